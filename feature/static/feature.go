package static

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Feature plugs the static file server into the loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the feature serving fsys. indexFiles take precedence
// over DefaultIndexFiles for directory requests.
func NewFeature(fsys afero.Fs, logger *zap.Logger, indexFiles ...string) *Feature {
	return &Feature{handler: NewHandler(NewService(fsys, logger, indexFiles...))}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled always returns true; serving files is the server's purpose.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the routes. It registers a catch-all, so load it last.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
