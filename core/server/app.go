package server

import (
	"errors"

	"extension-devserver/core/logger"
	"extension-devserver/core/middleware/access"
	"extension-devserver/core/middleware/cors"
	"extension-devserver/core/middleware/rayid"
	"extension-devserver/core/middleware/serial"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp builds the Fiber application with the middleware chain every
// response passes through. Features register their routes on the result.
func NewApp(log *zap.Logger, requests logger.RequestLogger) *fiber.App {
	errHandler := ErrorHandler(log)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errHandler,
	})

	// 1. RayID (first, so every log line can be traced)
	app.Use(rayid.New())

	// 2. Access log, rendering handler errors itself so the final status is known
	app.Use(access.New(access.Config{
		Logger:       requests,
		ErrorHandler: errHandler,
	}))

	// 3. Cross-origin headers, set before anything can fail
	app.Use(cors.New())

	// 4. One request at a time
	app.Use(serial.New())

	return app
}

// ErrorHandler turns handler errors into plain-text responses.
// Fiber errors keep their status and message; anything else is a 500.
// It also serves errors fiber raises before routing, so it sets the
// cross-origin headers itself.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		l := logger.WithRayID(log, c)
		if code >= fiber.StatusInternalServerError {
			l.Error("Request error", zap.String("path", c.Path()), zap.Error(err))
		} else {
			l.Debug("Request rejected", zap.String("path", c.Path()), zap.Int("status", code))
		}

		cors.Apply(c)
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(message)
	}
}
