package cors

import "github.com/gofiber/fiber/v2"

const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "*"
)

// Apply sets the permissive cross-origin headers on the response.
// Error handlers call it too: fiber renders some errors (oversized headers,
// oversized bodies, malformed requests) without running any middleware.
func Apply(c *fiber.Ctx) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, AllowOrigin)
	c.Set(fiber.HeaderAccessControlAllowMethods, AllowMethods)
	c.Set(fiber.HeaderAccessControlAllowHeaders, AllowHeaders)
}

// New returns a middleware that adds permissive cross-origin headers.
//
// The headers are written before the rest of the chain runs, so they survive
// on error responses, redirects and 405s. Preflight requests end here with 204.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		Apply(c)

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
