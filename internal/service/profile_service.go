package service

import (
	"context"
	"time"

	"devlink/internal/models"
	"devlink/internal/repository"
)

// ProfileService handles profile upserts and experience/education sub-records.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// UpsertProfileInput carries the full profile payload. Required fields are
// validated by the handler; optional scalars left empty do not clear stored
// values, while the social links are rebuilt from the request every time.
type UpsertProfileInput struct {
	UserID         uint
	Firstname      string   `json:"firstname"`
	Lastname       string   `json:"lastname"`
	Status         string   `json:"status"`
	Skills         []string `json:"skills"`
	Company        string   `json:"company"`
	Website        string   `json:"website"`
	Location       string   `json:"location"`
	Bio            string   `json:"bio"`
	GithubUsername string   `json:"githubusername"`
	Youtube        string   `json:"youtube"`
	Facebook       string   `json:"facebook"`
	Instagram      string   `json:"instagram"`
	Linkedin       string   `json:"linkedin"`
}

type ExperienceInput struct {
	UserID      uint
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        *time.Time `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationInput struct {
	UserID  uint
	School  string     `json:"school"`
	Degree  string     `json:"degree"`
	Field   string     `json:"field"`
	Place   string     `json:"place"`
	From    *time.Time `json:"from"`
	To      *time.Time `json:"to"`
	Current bool       `json:"current"`
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetOwn returns the caller's profile.
func (s *ProfileService) GetOwn(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile doesn't exist")
	}
	return profile, nil
}

// GetByUser returns any user's profile for the public read path.
func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("No such profile exists")
	}
	return profile, nil
}

// List returns every profile, most recently updated first.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates or updates the caller's profile in one operation and
// reports whether a new profile was created.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*models.Profile, bool, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, false, err
	}

	created := profile == nil
	if created {
		profile = &models.Profile{UserID: in.UserID}
	}

	profile.Firstname = in.Firstname
	profile.Lastname = in.Lastname
	profile.Status = in.Status
	profile.Skills = in.Skills
	if in.Company != "" {
		profile.Company = in.Company
	}
	if in.Website != "" {
		profile.Website = in.Website
	}
	if in.Location != "" {
		profile.Location = in.Location
	}
	if in.Bio != "" {
		profile.Bio = in.Bio
	}
	if in.GithubUsername != "" {
		profile.GithubUsername = in.GithubUsername
	}
	// Social links are replaced wholesale, so omitting one clears it.
	profile.Social = models.SocialLinks{
		Youtube:   in.Youtube,
		Facebook:  in.Facebook,
		Instagram: in.Instagram,
		Linkedin:  in.Linkedin,
	}
	profile.LastUpdated = time.Now()

	if created {
		err = s.profileRepo.Create(ctx, profile)
	} else {
		err = s.profileRepo.Save(ctx, profile)
	}
	if err != nil {
		return nil, false, err
	}

	fresh, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, false, err
	}
	return fresh, created, nil
}

// Delete removes the caller's profile. Deleting a profile that does not
// exist succeeds.
func (s *ProfileService) Delete(ctx context.Context, userID uint) error {
	return s.profileRepo.Delete(ctx, userID)
}

// AddExperience appends a work history entry and returns the full profile.
func (s *ProfileService) AddExperience(ctx context.Context, in ExperienceInput) (*models.Profile, error) {
	profile, err := s.ownedProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.CreateExperience(ctx, exp); err != nil {
		return nil, err
	}
	return s.touch(ctx, profile)
}

// UpdateExperience replaces the entry addressed by expID in place.
func (s *ProfileService) UpdateExperience(ctx context.Context, expID uint, in ExperienceInput) (*models.Profile, error) {
	profile, err := s.ownedProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	exp, err := s.profileRepo.GetExperience(ctx, profile.ID, expID)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, models.NewNotFoundError("No such experience exists")
	}

	exp.Title = in.Title
	exp.Company = in.Company
	if in.Location != "" {
		exp.Location = in.Location
	}
	if in.From != nil {
		exp.From = in.From
	}
	if in.To != nil {
		exp.To = in.To
	}
	exp.Current = in.Current
	if in.Description != "" {
		exp.Description = in.Description
	}
	if err := s.profileRepo.SaveExperience(ctx, exp); err != nil {
		return nil, err
	}
	return s.touch(ctx, profile)
}

// DeleteExperience removes the entry addressed by expID. Removing an entry
// that does not exist leaves the profile unchanged.
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.ownedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.touch(ctx, profile)
}

// AddEducation appends an education entry and returns the full profile.
func (s *ProfileService) AddEducation(ctx context.Context, in EducationInput) (*models.Profile, error) {
	profile, err := s.ownedProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		ProfileID: profile.ID,
		School:    in.School,
		Degree:    in.Degree,
		Field:     in.Field,
		Place:     in.Place,
		From:      in.From,
		To:        in.To,
		Current:   in.Current,
	}
	if err := s.profileRepo.CreateEducation(ctx, edu); err != nil {
		return nil, err
	}
	return s.touch(ctx, profile)
}

// UpdateEducation replaces the entry addressed by eduID in place.
func (s *ProfileService) UpdateEducation(ctx context.Context, eduID uint, in EducationInput) (*models.Profile, error) {
	profile, err := s.ownedProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	edu, err := s.profileRepo.GetEducation(ctx, profile.ID, eduID)
	if err != nil {
		return nil, err
	}
	if edu == nil {
		return nil, models.NewNotFoundError("No such education exists")
	}

	edu.School = in.School
	edu.Degree = in.Degree
	edu.Field = in.Field
	if in.Place != "" {
		edu.Place = in.Place
	}
	if in.From != nil {
		edu.From = in.From
	}
	if in.To != nil {
		edu.To = in.To
	}
	edu.Current = in.Current
	if err := s.profileRepo.SaveEducation(ctx, edu); err != nil {
		return nil, err
	}
	return s.touch(ctx, profile)
}

// DeleteEducation removes the entry addressed by eduID, tolerating entries
// that are already gone.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.ownedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.touch(ctx, profile)
}

func (s *ProfileService) ownedProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("No profile exists for this user")
	}
	return profile, nil
}

// touch bumps LastUpdated after a sub-record write and reloads the profile
// so the response carries the fresh sub-record list.
func (s *ProfileService) touch(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	profile.LastUpdated = time.Now()
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, profile.UserID)
}
