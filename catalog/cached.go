package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/lingobase/lingo/cache"
)

// Cached decorates a Store with a byte-level cache. Hits are served from
// the cache; misses fall through to the wrapped store and are cached on
// success. Lookup failures are never cached.
type Cached struct {
	next Store
	raw  cache.RawCache
	ttl  time.Duration
}

// NewCached wraps next with the supplied cache and TTL.
func NewCached(next Store, raw cache.RawCache, ttl time.Duration) *Cached {
	return &Cached{next: next, raw: raw, ttl: ttl}
}

// Text implements Store.
func (c *Cached) Text(ctx context.Context, id int, languageID int) (string, error) {
	return c.lookup(ctx, KindText, id, languageID, c.next.Text)
}

// Word implements Store.
func (c *Cached) Word(ctx context.Context, id int, languageID int) (string, error) {
	return c.lookup(ctx, KindWord, id, languageID, c.next.Word)
}

func (c *Cached) lookup(
	ctx context.Context,
	kind Kind,
	id int,
	languageID int,
	resolve func(context.Context, int, int) (string, error),
) (string, error) {
	key := fmt.Sprintf("%s:%d:%d", kind, id, languageID)

	if value, ok, err := c.raw.Get(ctx, key); err == nil && ok {
		return string(value), nil
	}

	content, err := resolve(ctx, id, languageID)
	if err != nil {
		return "", err
	}

	_ = c.raw.Set(ctx, key, []byte(content), c.ttl)

	return content, nil
}

// Close releases the underlying cache resources.
func (c *Cached) Close() error {
	err := c.raw.Close()
	if closer, ok := c.next.(io.Closer); ok {
		err = errors.Join(err, closer.Close())
	}
	return err
}
