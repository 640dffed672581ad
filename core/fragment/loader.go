package fragment

import (
	"context"
	"fmt"
	"html"
	"sync"

	"fragment-loader/core/document"
	"fragment-loader/core/events"
	"fragment-loader/core/source"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Request describes one insertion. An empty Position means BeforeEnd.
type Request struct {
	Ref      string            `json:"path"`
	Target   string            `json:"target"`
	Position document.Position `json:"position,omitempty"`
}

// Loader splices fragments into a single document.
// All methods are safe for concurrent use.
type Loader struct {
	doc    *document.Document
	source source.Source
	logger *zap.Logger

	cache       *Cache
	bus         *events.Bus
	hooks       map[string]Hook
	hookOrder   []string
	development bool
	concurrency int64

	// mu guards loaded and every mutation of doc.
	mu     sync.Mutex
	loaded map[string]struct{}
}

// Option configures a Loader.
type Option func(*Loader)

// WithDevelopmentMode makes retrieval failures visible in the document.
func WithDevelopmentMode(enabled bool) Option {
	return func(l *Loader) {
		l.development = enabled
	}
}

// WithCache shares an existing cache instead of creating a private one.
func WithCache(c *Cache) Option {
	return func(l *Loader) {
		if c != nil {
			l.cache = c
		}
	}
}

// WithBus publishes rehydration events on b.
func WithBus(b *events.Bus) Option {
	return func(l *Loader) {
		if b != nil {
			l.bus = b
		}
	}
}

// WithHook registers a rehydration hook for the named capability.
// Registering the same name twice replaces the earlier hook.
func WithHook(name string, h Hook) Option {
	return func(l *Loader) {
		if h == nil {
			return
		}
		if _, exists := l.hooks[name]; !exists {
			l.hookOrder = append(l.hookOrder, name)
		}
		l.hooks[name] = h
	}
}

// WithConcurrency bounds the number of loads LoadMany runs at once.
// Zero or less means unbounded.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		l.concurrency = int64(n)
	}
}

// New creates a loader for doc retrieving fragments from src.
func New(doc *document.Document, src source.Source, logger *zap.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Loader{
		doc:    doc,
		source: src,
		logger: logger,
		cache:  NewCache(),
		bus:    events.NewBus(),
		hooks:  make(map[string]Hook),
		loaded: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Document returns the document the loader inserts into.
func (l *Loader) Document() *document.Document {
	return l.doc
}

// Cache returns the loader's cache.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// Bus returns the bus rehydration events are published on.
func (l *Loader) Bus() *events.Bus {
	return l.bus
}

// Loaded reports whether ref has been placed in the document.
func (l *Loader) Loaded(ref string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.loaded[ref]
	return ok
}

// Load retrieves ref (from the cache when possible) and inserts it at
// target/position, then rehydrates. It blocks until done and never fails:
// problems are logged, and in development mode a retrieval failure leaves a
// visible warning at the target.
func (l *Loader) Load(ctx context.Context, ref, target string, position document.Position) {
	log := l.logger.With(zap.String("ref", ref), zap.String("target", target))

	if ref == "" {
		log.Error("Empty fragment reference")
		return
	}
	if l.Loaded(ref) {
		log.Warn("Component already loaded")
		return
	}

	if markup, ok := l.cache.Get(ref); ok {
		// Cache hits rehydrate too, once per successful placement
		log.Debug("Component served from cache")
		l.place(ref, markup, target, position, log)
		return
	}

	markup, err := l.cache.Fetch(ctx, ref, l.source)
	if err != nil {
		log.Error("Error loading component", zap.Error(err))
		if l.development {
			l.Insert(warningMarkup(ref), target, position)
		}
		return
	}

	l.place(ref, markup, target, position, log)
}

// place inserts markup once per ref and rehydrates after a successful insertion.
// The loaded-set is re-checked under the lock because a concurrent Load of the
// same ref may have finished while this one was fetching.
func (l *Loader) place(ref, markup, target string, position document.Position, log *zap.Logger) {
	l.mu.Lock()
	if _, ok := l.loaded[ref]; ok {
		l.mu.Unlock()
		log.Warn("Component already loaded")
		return
	}
	inserted := l.insertLocked(markup, target, position)
	if inserted {
		l.loaded[ref] = struct{}{}
	}
	l.mu.Unlock()

	if !inserted {
		// Markup stays cached; a later Load can place it without refetching
		return
	}

	log.Info("Component loaded")
	l.Rehydrate()
}

// Insert parses markup outside the document and places its top-level nodes
// at target/position in source order. It reports whether anything was inserted.
func (l *Loader) Insert(markup, target string, position document.Position) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.insertLocked(markup, target, position)
}

func (l *Loader) insertLocked(markup, target string, position document.Position) bool {
	log := l.logger.With(zap.String("target", target), zap.Stringer("position", position))

	node, err := l.doc.Query(target)
	if err != nil {
		log.Error("Invalid target selector", zap.Error(err))
		return false
	}
	if node == nil {
		log.Error("Target element not found")
		return false
	}

	nodes, err := document.ParseFragment(markup)
	if err != nil {
		log.Error("Failed to parse fragment markup", zap.Error(err))
		return false
	}

	if err := document.InsertAdjacent(node, position, nodes); err != nil {
		log.Error("Failed to insert fragment", zap.Error(err))
		return false
	}
	return true
}

// Rehydrate runs every registered hook over the document and then
// publishes events.FragmentInserted. Under LoadMany it is called from
// several goroutines, so bus listeners may run concurrently.
func (l *Loader) Rehydrate() {
	l.mu.Lock()
	for _, name := range l.hookOrder {
		n := l.hooks[name](l.doc)
		l.logger.Debug("Capability rehydrated", zap.String("capability", name), zap.Int("activated", n))
	}
	l.mu.Unlock()

	// Published without the lock so listeners may call back into the loader
	l.bus.Publish(events.Event{Name: events.FragmentInserted})
}

// LoadMany runs all requests concurrently and returns once every one of them
// has settled. A failing request never affects the others.
func (l *Loader) LoadMany(ctx context.Context, requests []Request) {
	var sem *semaphore.Weighted
	if l.concurrency > 0 {
		sem = semaphore.NewWeighted(l.concurrency)
	}

	var wg sync.WaitGroup
	for _, req := range requests {
		wg.Add(1)
		go func(req Request) {
			defer wg.Done()

			if sem != nil {
				if err := sem.Acquire(ctx, 1); err != nil {
					l.logger.Error("Error loading component", zap.String("ref", req.Ref), zap.Error(err))
					return
				}
				defer sem.Release(1)
			}

			position := req.Position
			if position == "" {
				position = document.BeforeEnd
			}
			l.Load(ctx, req.Ref, req.Target, position)
		}(req)
	}
	wg.Wait()
}

// ClearCache empties the cache and the loaded-set. The document is untouched.
func (l *Loader) ClearCache() {
	l.cache.Clear()

	l.mu.Lock()
	l.loaded = make(map[string]struct{})
	l.mu.Unlock()
}

func warningMarkup(ref string) string {
	return fmt.Sprintf(`<div class="alert alert-warning">Failed to load component: %s</div>`, html.EscapeString(ref))
}
