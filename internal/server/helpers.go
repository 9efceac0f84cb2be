package server

import (
	"errors"

	"devlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// currentUserID returns the authenticated user's ID stored by the access
// guard. Routes behind AuthRequired always have it.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// parseID extracts a route parameter as a positive uint. On failure it
// writes the route's own not-found response, mirroring how an unknown
// identifier is reported, and returns errResponseWritten. Callers should
// check: if err != nil { return nil }.
func parseID(c *fiber.Ctx, param string, notFound *models.AppError) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, notFound)
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseBody unmarshals the JSON body into dest, answering 400 on malformed
// input.
func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		_ = models.RespondWithValidationErrors(c, []string{"Invalid request body"})
		return errResponseWritten
	}
	return nil
}
