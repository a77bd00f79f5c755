package access

import (
	"time"

	"extension-devserver/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Config defines the access middleware dependencies.
type Config struct {
	// Logger receives one entry per request. Required.
	Logger logger.RequestLogger
	// ErrorHandler renders errors returned further down the chain.
	// Defaults to fiber.DefaultErrorHandler.
	ErrorHandler fiber.ErrorHandler
}

// New returns a middleware that reports every request after its response is final.
//
// Errors from the rest of the chain are rendered here, through ErrorHandler,
// so the logged status matches what the client receives.
func New(cfg Config) fiber.Handler {
	errHandler := cfg.ErrorHandler
	if errHandler == nil {
		errHandler = fiber.DefaultErrorHandler
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := errHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		// fasthttp drops the body of HEAD responses on the wire.
		sent := len(c.Response().Body())
		if c.Method() == fiber.MethodHead {
			sent = 0
		}

		rayID, _ := c.Locals("ray_id").(string)
		cfg.Logger.LogRequest(logger.AccessEntry{
			Time:     start,
			RayID:    rayID,
			RemoteIP: c.IP(),
			Method:   c.Method(),
			Path:     c.OriginalURL(),
			Status:   c.Response().StatusCode(),
			Bytes:    sent,
			Duration: time.Since(start),
		})
		return nil
	}
}
