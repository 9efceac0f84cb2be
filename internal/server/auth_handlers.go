package server

import (
	"errors"

	"devlink/internal/models"
	"devlink/internal/service"
	"devlink/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /user/register. On success the response carries the
// session token as {"accessToken": ...}.
func (s *Server) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	var msgs []string
	if err := validation.ValidateUsername(req.Username); err != nil {
		msgs = append(msgs, err.Error())
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		msgs = append(msgs, err.Error())
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		msgs = append(msgs, err.Error())
	}
	if len(msgs) > 0 {
		return models.RespondWithValidationErrors(c, msgs)
	}

	accessToken, err := s.authService.Register(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"accessToken": accessToken})
}

// Login handles POST /auth/login. Bad credentials answer 401 with the same
// error list shape the signup form parses, so both forms share one renderer
// client-side.
func (s *Server) Login(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	// The login form's messages are shorter than the signup form's.
	var msgs []string
	if err := validation.ValidateEmail(req.Email); err != nil {
		msgs = append(msgs, "Enter a valid email")
	}
	if req.Password == "" {
		msgs = append(msgs, "Password required")
	}
	if len(msgs) > 0 {
		return models.RespondWithValidationErrors(c, msgs)
	}

	accessToken, err := s.authService.Login(c.UserContext(), req)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"errors": []models.FieldError{{Msg: appErr.Message}},
			})
		}
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"accessToken": accessToken})
}

// GetAuthUser handles GET /auth/user, returning the caller's user record.
// The password hash is excluded from serialization.
func (s *Server) GetAuthUser(c *fiber.Ctx) error {
	user, err := s.authService.GetAuthUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}
