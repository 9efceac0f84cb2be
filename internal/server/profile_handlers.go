package server

import (
	"devlink/internal/models"
	"devlink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetOwnProfile handles GET /profile.
func (s *Server) GetOwnProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetOwn(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile handles POST /profile/update with upsert semantics:
// 201 when the call created the profile, 200 when it updated one.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req service.UpsertProfileInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	req.UserID = currentUserID(c)

	var msgs []string
	if req.Status == "" {
		msgs = append(msgs, "Status field is required")
	}
	if len(req.Skills) == 0 {
		msgs = append(msgs, "Skills field is required")
	}
	if req.Firstname == "" {
		msgs = append(msgs, "Firstname field is required")
	}
	if req.Lastname == "" {
		msgs = append(msgs, "Lastname field is required")
	}
	if len(msgs) > 0 {
		return models.RespondWithValidationErrors(c, msgs)
	}

	profile, created, err := s.profileService.Upsert(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(profile)
}

// DeleteProfile handles DELETE /profile/delete. Idempotent.
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	if err := s.profileService.Delete(c.UserContext(), currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Profile deleted Successfully"})
}

// GetAllProfiles handles GET /profile/all.
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByUser handles GET /profile/user/:user_id. An unparseable user
// id answers the same way as an unknown one.
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id", models.NewNotFoundError("No such profile exists"))
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByUser(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// AddExperience handles POST /profile/add/experience.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req service.ExperienceInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	req.UserID = currentUserID(c)

	if msgs := validateExperience(req); len(msgs) > 0 {
		return models.RespondWithValidationErrors(c, msgs)
	}

	profile, err := s.profileService.AddExperience(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// UpdateExperience handles PUT /profile/update/experience/:experience.
func (s *Server) UpdateExperience(c *fiber.Ctx) error {
	expID, err := parseID(c, "experience", models.NewNotFoundError("No such experience exists"))
	if err != nil {
		return nil
	}

	var req service.ExperienceInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	req.UserID = currentUserID(c)

	if msgs := validateExperience(req); len(msgs) > 0 {
		return models.RespondWithValidationErrors(c, msgs)
	}

	profile, err := s.profileService.UpdateExperience(c.UserContext(), expID, req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// DeleteExperience handles DELETE /profile/delete/experience/:experience.
// Removing an entry that is already gone leaves the profile unchanged.
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	expID, err := parseID(c, "experience", models.NewNotFoundError("No such experience exists"))
	if err != nil {
		return nil
	}

	profile, err := s.profileService.DeleteExperience(c.UserContext(), currentUserID(c), expID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation handles POST /profile/add/education.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req service.EducationInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	req.UserID = currentUserID(c)

	if msgs := validateEducation(req); len(msgs) > 0 {
		return models.RespondWithValidationErrors(c, msgs)
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// UpdateEducation handles PUT /profile/update/education/:education.
func (s *Server) UpdateEducation(c *fiber.Ctx) error {
	eduID, err := parseID(c, "education", models.NewNotFoundError("No such education exists"))
	if err != nil {
		return nil
	}

	var req service.EducationInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	req.UserID = currentUserID(c)

	if msgs := validateEducation(req); len(msgs) > 0 {
		return models.RespondWithValidationErrors(c, msgs)
	}

	profile, err := s.profileService.UpdateEducation(c.UserContext(), eduID, req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// DeleteEducation handles DELETE /profile/delete/education/:education.
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID, err := parseID(c, "education", models.NewNotFoundError("No such education exists"))
	if err != nil {
		return nil
	}

	profile, err := s.profileService.DeleteEducation(c.UserContext(), currentUserID(c), eduID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

func validateExperience(in service.ExperienceInput) []string {
	var msgs []string
	if in.Title == "" {
		msgs = append(msgs, "Title is required")
	}
	if in.Company == "" {
		msgs = append(msgs, "Company is required")
	}
	return msgs
}

func validateEducation(in service.EducationInput) []string {
	var msgs []string
	if in.School == "" {
		msgs = append(msgs, "School is required")
	}
	if in.Degree == "" {
		msgs = append(msgs, "Degree is required")
	}
	if in.Field == "" {
		msgs = append(msgs, "Field is required")
	}
	return msgs
}
