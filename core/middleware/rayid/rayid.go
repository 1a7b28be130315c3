// Package rayid tags every request with a unique ray ID.
package rayid

import (
	"record-merger/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray ID in requests and responses.
const Header = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key holding the ray ID.
const LocalsKey = logger.RayIDKey

// New returns middleware that reuses an incoming X-Ray-ID or generates one,
// stores it in locals and echoes it in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
