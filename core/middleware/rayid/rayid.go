package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header is the response header carrying the request id.
	Header = "X-Ray-ID"
	// LocalsKey is the fiber locals key the id is stored under.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning a fresh RayID to every request.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
