package service

import (
	"context"
	"testing"
	"time"

	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileState backs a stubProfileRepo with a single stored profile so the
// upsert and sub-record paths see their own writes.
type profileState struct {
	profile *models.Profile
	creates int
	saves   int
}

func newProfileState(profile *models.Profile) (*profileState, *stubProfileRepo) {
	st := &profileState{profile: profile}
	repo := &stubProfileRepo{
		getByUserID: func(ctx context.Context, userID uint) (*models.Profile, error) {
			if st.profile == nil || st.profile.UserID != userID {
				return nil, nil
			}
			copy := *st.profile
			return &copy, nil
		},
		create: func(ctx context.Context, profile *models.Profile) error {
			st.creates++
			profile.ID = 1
			st.profile = profile
			return nil
		},
		save: func(ctx context.Context, profile *models.Profile) error {
			st.saves++
			st.profile = profile
			return nil
		},
	}
	return st, repo
}

func TestUpsert_Create(t *testing.T) {
	st, repo := newProfileState(nil)
	svc := NewProfileService(repo)

	profile, created, err := svc.Upsert(t.Context(), UpsertProfileInput{
		UserID:    1,
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Status:    "Developer",
		Skills:    []string{"Go", "Postgres"},
		Youtube:   "https://youtube.com/@ada",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, st.creates)
	assert.Equal(t, "Ada", profile.Firstname)
	assert.Equal(t, []string{"Go", "Postgres"}, profile.Skills)
	assert.Equal(t, "https://youtube.com/@ada", profile.Social.Youtube)
	assert.False(t, profile.LastUpdated.IsZero())
}

func TestUpsert_UpdatePreservesOptionalScalars(t *testing.T) {
	st, repo := newProfileState(&models.Profile{
		ID:        1,
		UserID:    1,
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Status:    "Developer",
		Company:   "Acme",
		Bio:       "First programmer",
		Social:    models.SocialLinks{Youtube: "https://youtube.com/@ada", Linkedin: "https://linkedin.com/in/ada"},
	})
	svc := NewProfileService(repo)

	// Optional scalars omitted from the payload keep their stored values.
	// Social links are rebuilt wholesale, so the omitted linkedin is cleared.
	profile, created, err := svc.Upsert(t.Context(), UpsertProfileInput{
		UserID:    1,
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Status:    "Senior Developer",
		Skills:    []string{"Go"},
		Youtube:   "https://youtube.com/@ada",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 0, st.creates)
	assert.Equal(t, 1, st.saves)

	assert.Equal(t, "Senior Developer", profile.Status)
	assert.Equal(t, "Acme", profile.Company)
	assert.Equal(t, "First programmer", profile.Bio)
	assert.Equal(t, "https://youtube.com/@ada", profile.Social.Youtube)
	assert.Empty(t, profile.Social.Linkedin)
}

func TestGetOwn(t *testing.T) {
	_, repo := newProfileState(&models.Profile{ID: 1, UserID: 1, Status: "Developer"})
	svc := NewProfileService(repo)

	profile, err := svc.GetOwn(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Developer", profile.Status)

	_, err = svc.GetOwn(t.Context(), 2)
	requireAppError(t, err, models.CodeNotFound, "Profile doesn't exist")
}

func TestGetByUser(t *testing.T) {
	_, repo := newProfileState(nil)
	svc := NewProfileService(repo)

	_, err := svc.GetByUser(t.Context(), 1)
	requireAppError(t, err, models.CodeNotFound, "No such profile exists")
}

func TestDeleteProfile_Idempotent(t *testing.T) {
	calls := 0
	repo := &stubProfileRepo{
		deleteFn: func(ctx context.Context, userID uint) error {
			calls++
			return nil
		},
	}
	svc := NewProfileService(repo)

	require.NoError(t, svc.Delete(t.Context(), 1))
	require.NoError(t, svc.Delete(t.Context(), 1))
	assert.Equal(t, 2, calls)
}

func TestAddExperience(t *testing.T) {
	st, repo := newProfileState(&models.Profile{ID: 1, UserID: 1})
	var created *models.Experience
	repo.createExperience = func(ctx context.Context, exp *models.Experience) error {
		exp.ID = 4
		created = exp
		return nil
	}
	svc := NewProfileService(repo)

	from := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	before := time.Now()
	_, err := svc.AddExperience(t.Context(), ExperienceInput{
		UserID:  1,
		Title:   "Engineer",
		Company: "Acme",
		From:    &from,
		Current: true,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, uint(1), created.ProfileID)
	assert.Equal(t, "Engineer", created.Title)
	assert.True(t, created.Current)

	// The sub-record write bumps the profile's LastUpdated.
	assert.Equal(t, 1, st.saves)
	assert.False(t, st.profile.LastUpdated.Before(before))
}

func TestAddExperience_NoProfile(t *testing.T) {
	_, repo := newProfileState(nil)
	svc := NewProfileService(repo)

	_, err := svc.AddExperience(t.Context(), ExperienceInput{UserID: 1, Title: "Engineer", Company: "Acme"})
	requireAppError(t, err, models.CodeNotFound, "No profile exists for this user")
}

func TestUpdateExperience(t *testing.T) {
	_, repo := newProfileState(&models.Profile{ID: 1, UserID: 1})
	stored := &models.Experience{ID: 4, ProfileID: 1, Title: "Engineer", Company: "Acme", Location: "Berlin"}
	var saved *models.Experience
	repo.getExperience = func(ctx context.Context, profileID, expID uint) (*models.Experience, error) {
		if expID == stored.ID && profileID == stored.ProfileID {
			copy := *stored
			return &copy, nil
		}
		return nil, nil
	}
	repo.saveExperience = func(ctx context.Context, exp *models.Experience) error {
		saved = exp
		return nil
	}
	svc := NewProfileService(repo)

	_, err := svc.UpdateExperience(t.Context(), 4, ExperienceInput{
		UserID:  1,
		Title:   "Senior Engineer",
		Company: "Acme",
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "Senior Engineer", saved.Title)
	// Optional location omitted from the payload stays put.
	assert.Equal(t, "Berlin", saved.Location)

	_, err = svc.UpdateExperience(t.Context(), 99, ExperienceInput{UserID: 1, Title: "X", Company: "Y"})
	requireAppError(t, err, models.CodeNotFound, "No such experience exists")
}

func TestDeleteExperience(t *testing.T) {
	st, repo := newProfileState(&models.Profile{ID: 1, UserID: 1})
	deleted := false
	repo.deleteExperience = func(ctx context.Context, profileID, expID uint) error {
		deleted = true
		return nil
	}
	svc := NewProfileService(repo)

	_, err := svc.DeleteExperience(t.Context(), 1, 4)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 1, st.saves)
}

func TestUpdateEducation(t *testing.T) {
	_, repo := newProfileState(&models.Profile{ID: 1, UserID: 1})
	stored := &models.Education{ID: 6, ProfileID: 1, School: "MIT", Degree: "BSc", Field: "CS", Place: "Boston"}
	var saved *models.Education
	repo.getEducation = func(ctx context.Context, profileID, eduID uint) (*models.Education, error) {
		if eduID == stored.ID && profileID == stored.ProfileID {
			copy := *stored
			return &copy, nil
		}
		return nil, nil
	}
	repo.saveEducation = func(ctx context.Context, edu *models.Education) error {
		saved = edu
		return nil
	}
	svc := NewProfileService(repo)

	_, err := svc.UpdateEducation(t.Context(), 6, EducationInput{
		UserID: 1,
		School: "MIT",
		Degree: "MSc",
		Field:  "Distributed Systems",
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "MSc", saved.Degree)
	assert.Equal(t, "Distributed Systems", saved.Field)
	assert.Equal(t, "Boston", saved.Place)

	_, err = svc.UpdateEducation(t.Context(), 99, EducationInput{UserID: 1, School: "X", Degree: "Y", Field: "Z"})
	requireAppError(t, err, models.CodeNotFound, "No such education exists")
}

func TestAddEducation(t *testing.T) {
	_, repo := newProfileState(&models.Profile{ID: 1, UserID: 1})
	var created *models.Education
	repo.createEducation = func(ctx context.Context, edu *models.Education) error {
		edu.ID = 6
		created = edu
		return nil
	}
	svc := NewProfileService(repo)

	_, err := svc.AddEducation(t.Context(), EducationInput{
		UserID: 1,
		School: "MIT",
		Degree: "BSc",
		Field:  "CS",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, uint(1), created.ProfileID)
	assert.Equal(t, "MIT", created.School)
}

func TestDeleteEducation(t *testing.T) {
	st, repo := newProfileState(&models.Profile{ID: 1, UserID: 1})
	repo.deleteEducation = func(ctx context.Context, profileID, eduID uint) error {
		return nil
	}
	svc := NewProfileService(repo)

	_, err := svc.DeleteEducation(t.Context(), 1, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, st.saves)

	_, err = svc.DeleteEducation(t.Context(), 2, 6)
	requireAppError(t, err, models.CodeNotFound, "No profile exists for this user")
}
