package lingo

import (
	"context"

	"github.com/lingobase/lingo/cache"
	"github.com/lingobase/lingo/catalog"
)

// Setup assembles a Service entirely from configuration: the registry from
// the configured languages file, the catalog from the database when a URL
// is set and from toml message files otherwise, and an optional cache
// layer in front of either.
func Setup(ctx context.Context, cfg Config) (*Service, error) {
	registry := DefaultRegistry()
	if cfg.LanguagesPath != "" {
		var err error
		registry, err = LoadRegistry(cfg.LanguagesPath, cfg.DefaultLanguage)
		if err != nil {
			return nil, err
		}
	}

	opts := []Option{
		WithConfig(cfg),
		WithRegistry(registry),
	}

	if cfg.DatabaseURL != "" {
		opts = append(opts, WithDatastore(cfg.DatabaseURL))
	} else {
		codes := make(map[int]string)
		for _, lang := range registry.Languages() {
			codes[lang.ID] = lang.Code
		}
		store, err := catalog.NewBundle(cfg.MessagesDir, codes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCatalog(store))
	}

	if cfg.CacheURL != "" {
		raw, err := cache.FromURL(cfg.CacheURL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCache(raw, cfg.GetCacheTTL()))
	}

	svc, err := New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	svc.Log(ctx).
		WithField("service", cfg.ServiceName).
		WithField("languages", registry.sortedInternalCodes()).
		Debug("localization service ready")

	return svc, nil
}
