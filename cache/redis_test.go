package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lingobase/lingo/cache"
)

func TestNewRedisRejectsBadURL(t *testing.T) {
	_, err := cache.NewRedis("not-a-redis-url")
	require.Error(t, err)
}

func TestFromURLSelectsInMemory(t *testing.T) {
	raw, err := cache.FromURL("mem://localization")
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })

	require.IsType(t, &cache.InMemory{}, raw)
}

func TestFromURLRejectsBadURL(t *testing.T) {
	_, err := cache.FromURL("not-a-redis-url")
	require.Error(t, err)
}
