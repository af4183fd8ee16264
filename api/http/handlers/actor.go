package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/pkg/auth"
)

var errNoActor = errors.New("could not identify user")

// requestActor pulls the authenticated user id and role set by the JWT
// middleware out of the request context.
func requestActor(c *fiber.Ctx) (uuid.UUID, auth.Role, error) {
	idStr, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, "", errNoActor
	}
	roleStr, _ := c.Locals("role").(string)
	return id, auth.Role(roleStr), nil
}
