package serial

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

// New returns a middleware that lets only one request run the rest of the
// chain at a time. Other requests wait their turn on their own connection.
func New() fiber.Handler {
	var mu sync.Mutex
	return func(c *fiber.Ctx) error {
		mu.Lock()
		defer mu.Unlock()
		return c.Next()
	}
}
