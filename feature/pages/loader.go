package pages

import (
	"fragment-loader/core/events"
	"fragment-loader/core/fragment"
	"fragment-loader/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new pages feature.
func NewFeature(src source.Source, cfg fragment.Config, indexPage string, logger *zap.Logger, bus *events.Bus) *Feature {
	svc := NewService(src, cfg, logger, bus)
	h := NewHandler(svc, indexPage)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "pages"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
