package pages

import (
	"errors"
	"strconv"
	"strings"

	"fragment-loader/core/logger"
	"fragment-loader/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for pages and fragments.
type Handler struct {
	service   *Service
	indexPage string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, indexPage string) *Handler {
	if indexPage == "" {
		indexPage = "index.html"
	}
	return &Handler{service: service, indexPage: indexPage}
}

// RegisterRoutes registers the pages routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/pages", h.HandlePage)
	app.Get("/pages/*", h.HandlePage)
	app.Get("/fragments/*", h.HandleFragment)

	group := app.Group("/cache")
	group.Get("/", h.HandleListCache)
	group.Delete("/", h.HandleClearCache)
}

// HandlePage assembles a page.
// @Summary Assemble Page
// @Description Fetches the page, loads every fragment declared with data-component and returns the resulting HTML.
// @Tags pages
// @Produce html
// @Param path path string true "Page path"
// @Success 200 {string} string "Assembled HTML"
// @Failure 404 {object} map[string]string "Page not found"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /pages/{path} [get]
func (h *Handler) HandlePage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	page := strings.Trim(c.Params("*"), "/")
	if page == "" {
		page = h.indexPage
	}
	ref := "/" + page

	result, err := h.service.Assemble(c.UserContext(), ref)
	if err != nil {
		l.Error("Page assembly failed", zap.String("page", ref), zap.Error(err))
		return h.sourceError(c, err)
	}

	l.Info("Page assembled",
		zap.String("page", ref),
		zap.Int("declared", result.Declared),
		zap.Int("loaded", len(result.Loaded)))

	c.Set("X-Fragments-Declared", strconv.Itoa(result.Declared))
	c.Set("X-Fragments-Loaded", strconv.Itoa(len(result.Loaded)))
	c.Type("html", "utf-8")
	return c.SendString(result.HTML)
}

// HandleFragment returns a single fragment.
// @Summary Get Fragment
// @Description Returns the raw markup of a fragment, from the cache when possible.
// @Tags fragments
// @Produce html
// @Param path path string true "Fragment path"
// @Success 200 {string} string "Fragment markup"
// @Failure 404 {object} map[string]string "Fragment not found"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /fragments/{path} [get]
func (h *Handler) HandleFragment(c *fiber.Ctx) error {
	ref := "/" + strings.Trim(c.Params("*"), "/")
	if ref == "/" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fragment path required"})
	}

	markup, err := h.service.Fragment(c.UserContext(), ref)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Fragment fetch failed", zap.String("ref", ref), zap.Error(err))
		return h.sourceError(c, err)
	}

	c.Type("html", "utf-8")
	return c.SendString(markup)
}

// HandleListCache lists cached fragments.
// @Summary List Cache
// @Description Lists the fragment references currently held in the shared cache.
// @Tags cache
// @Produce json
// @Success 200 {object} map[string]interface{} "Cache entries"
// @Router /cache [get]
func (h *Handler) HandleListCache(c *fiber.Ctx) error {
	refs := h.service.CachedRefs()
	return c.JSON(fiber.Map{
		"entries": len(refs),
		"refs":    refs,
	})
}

// HandleClearCache clears the shared cache.
// @Summary Clear Cache
// @Description Drops every cached fragment. Already served pages are unaffected.
// @Tags cache
// @Produce json
// @Success 200 {object} map[string]string "Cleared"
// @Router /cache [delete]
func (h *Handler) HandleClearCache(c *fiber.Ctx) error {
	h.service.ClearCache()
	logger.WithRayID(h.service.logger, c).Info("Fragment cache cleared")
	return c.JSON(fiber.Map{"status": "cleared"})
}

func (h *Handler) sourceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, source.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
}
