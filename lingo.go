// Package lingo resolves localized texts, words and dates against a
// per-session language context. Content is addressed by numeric entity
// identifiers and served from a pluggable catalog store.
package lingo

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/pitabwire/util"

	"github.com/lingobase/lingo/cache"
	"github.com/lingobase/lingo/catalog"
)

// ErrNoCatalog is returned by New when no catalog store was supplied.
var ErrNoCatalog = errors.New("lingo: no catalog store configured")

// Service owns the language registry and the catalog store and mints
// per-request language contexts. It is safe for concurrent use; the
// contexts it creates are not.
type Service struct {
	cfg      Config
	registry *Registry
	store    catalog.Store
	log      *util.LogEntry

	databaseURL string
	rawCache    cache.RawCache
	cacheTTL    time.Duration
}

// Option configures a Service under construction.
type Option func(s *Service)

// WithConfig overrides the service configuration.
func WithConfig(cfg Config) Option {
	return func(s *Service) {
		s.cfg = cfg
	}
}

// WithRegistry supplies the language registry to resolve against.
func WithRegistry(r *Registry) Option {
	return func(s *Service) {
		s.registry = r
	}
}

// WithCatalog supplies the store texts and words are looked up in.
func WithCatalog(store catalog.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithDatastore resolves the catalog from the postgres database at
// databaseURL. A store supplied via WithCatalog takes precedence.
func WithDatastore(databaseURL string) Option {
	return func(s *Service) {
		s.databaseURL = databaseURL
	}
}

// WithCache layers the supplied cache in front of whatever catalog store
// the service ends up with. A non-positive ttl falls back to the default.
func WithCache(raw cache.RawCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.rawCache = raw
		s.cacheTTL = ttl
	}
}

// WithLogger overrides the internal logger.
func WithLogger(log *util.LogEntry) Option {
	return func(s *Service) {
		s.log = log
	}
}

// New assembles a Service from the supplied options. A catalog store or a
// datastore URL is required; the registry defaults to the compiled-in
// English registry.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil && s.databaseURL != "" {
		store, err := catalog.NewDatastore(ctx, s.databaseURL)
		if err != nil {
			return nil, err
		}
		s.store = store
	}

	if s.store == nil {
		return nil, ErrNoCatalog
	}

	if s.rawCache != nil {
		ttl := s.cacheTTL
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}
		s.store = catalog.NewCached(s.store, s.rawCache, ttl)
	}

	if s.registry == nil {
		s.registry = DefaultRegistry()
	}

	if s.log == nil {
		var logOpts []util.Option
		if level, err := util.ParseLevel(s.cfg.LogLevel); err == nil {
			logOpts = append(logOpts, util.WithLogLevel(level))
		}
		logOpts = append(logOpts, util.WithLogNoColor(!s.cfg.LogColored))
		s.log = util.NewLogger(ctx, logOpts...).WithContext(ctx)
	}

	return s, nil
}

// Registry exposes the language registry the service resolves against.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Log returns the service logger bound to the supplied context.
func (s *Service) Log(ctx context.Context) *util.LogEntry {
	return s.log.WithContext(ctx)
}

// NewContext creates a language context whose base language is languageID.
func (s *Service) NewContext(languageID int) (*Context, error) {
	if _, err := s.registry.Get(languageID); err != nil {
		return nil, err
	}

	return &Context{svc: s, stack: []int{languageID}}, nil
}

// ContextFor creates a language context for the best registry match among
// the supplied language preferences, falling back to the base language.
func (s *Service) ContextFor(preferences ...string) *Context {
	id := s.registry.Match(preferences...)
	return &Context{svc: s, stack: []int{id}}
}

// Close releases the resources held by the catalog store, such as cache
// connections and database pools.
func (s *Service) Close() error {
	if closer, ok := s.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
