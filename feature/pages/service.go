package pages

import (
	"context"
	"fmt"

	"fragment-loader/core/document"
	"fragment-loader/core/events"
	"fragment-loader/core/fragment"
	"fragment-loader/core/source"

	"go.uber.org/zap"
)

// Service assembles pages.
type Service struct {
	source source.Source
	cache  *fragment.Cache
	bus    *events.Bus
	cfg    fragment.Config
	logger *zap.Logger
}

// Result is an assembled page.
type Result struct {
	HTML     string
	Declared int
	Loaded   []string
}

// NewService creates a new pages service.
func NewService(src source.Source, cfg fragment.Config, logger *zap.Logger, bus *events.Bus) *Service {
	if bus == nil {
		bus = events.NewBus()
	}
	return &Service{
		source: src,
		cache:  fragment.NewCache(),
		bus:    bus,
		cfg:    cfg,
		logger: logger,
	}
}

// Assemble fetches page from the source and loads every fragment it declares.
// Fragment failures are handled by the loader; only a missing or unparsable
// page is an error.
func (s *Service) Assemble(ctx context.Context, page string) (*Result, error) {
	markup, err := s.source.Fetch(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page %s: %w", page, err)
	}

	doc, err := document.ParseString(markup)
	if err != nil {
		return nil, err
	}

	opts := append(s.cfg.Options(), fragment.WithCache(s.cache), fragment.WithBus(s.bus))
	l := fragment.New(doc, s.source, s.logger.With(zap.String("page", page)), opts...)

	requests := fragment.Declarations(l)
	l.LoadMany(ctx, requests)

	result := &Result{HTML: doc.String(), Declared: len(requests)}
	for _, req := range requests {
		if l.Loaded(req.Ref) {
			result.Loaded = append(result.Loaded, req.Ref)
		}
	}
	return result, nil
}

// Fragment returns the markup of a single fragment, cached or fetched.
func (s *Service) Fragment(ctx context.Context, ref string) (string, error) {
	return s.cache.Fetch(ctx, ref, s.source)
}

// CachedRefs lists the cached fragment references.
func (s *Service) CachedRefs() []string {
	return s.cache.Refs()
}

// ClearCache drops every cached fragment.
func (s *Service) ClearCache() {
	s.cache.Clear()
}
