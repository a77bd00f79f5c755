package static

import (
	"errors"
	"net/http"
	"net/url"
	"path"
	"strings"

	"extension-devserver/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler serves the root filesystem over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the file routes. GET (and HEAD) and POST serve
// files; any other method that reaches the router gets 405.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleServe)
	app.Post("/*", h.HandleServe)
	app.Use(h.HandleUnsupported)
}

// HandleServe resolves the request path and sends a file, a directory index or a listing.
func (h *Handler) HandleServe(c *fiber.Ctx) error {
	// fasthttp has already decoded the path and collapsed dot segments.
	requestPath := string(c.Request().URI().Path())

	res, err := h.service.Resolve(requestPath)
	if err != nil {
		return h.toHTTPError(c, err)
	}

	if !res.IsDir() {
		// A trailing slash names a directory; a file behind it does not exist.
		if strings.HasSuffix(requestPath, "/") {
			return h.toHTTPError(c, ErrNotFound)
		}
		return h.sendFile(c, res)
	}

	if !strings.HasSuffix(requestPath, "/") {
		location := (&url.URL{Path: res.Path + "/"}).EscapedPath()
		if q := c.Request().URI().QueryString(); len(q) > 0 {
			location += "?" + string(q)
		}
		return c.Redirect(location, fiber.StatusMovedPermanently)
	}

	if index, ok := h.service.Index(res.Path); ok {
		return h.sendFile(c, index)
	}

	entries, err := h.service.List(res.Path)
	if err != nil {
		return h.toHTTPError(c, err)
	}
	body, err := renderListing(res.Path, entries)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}

// HandleUnsupported rejects methods the server does not serve.
func (h *Handler) HandleUnsupported(c *fiber.Ctx) error {
	return fiber.ErrMethodNotAllowed
}

func (h *Handler) sendFile(c *fiber.Ctx, res Resource) error {
	data, err := h.service.ReadFile(res.Path)
	if err != nil {
		return h.toHTTPError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType(res.Path))
	c.Set(fiber.HeaderLastModified, res.Info.ModTime().UTC().Format(http.TimeFormat))
	return c.Status(fiber.StatusOK).Send(data)
}

func (h *Handler) toHTTPError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "File not found")
	case errors.Is(err, ErrForbidden):
		logger.WithRayID(h.service.logger, c).Warn("Permission denied", zap.Error(err))
		return fiber.NewError(fiber.StatusForbidden, "Permission denied")
	default:
		return err
	}
}

func contentType(p string) string {
	ext := path.Ext(p)
	if ext == "" {
		return fiber.MIMEOctetStream
	}
	if mime := utils.GetMIME(ext); mime != "" {
		return mime
	}
	return fiber.MIMEOctetStream
}
