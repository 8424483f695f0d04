package app

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/emberlight/chronicle/internal/chronicle/domain"
	"github.com/emberlight/chronicle/internal/chronicle/resolve"
)

// cachedReader serves character and alias snapshots from a TTL cache.
// Session lookups pass through uncached: "latest" must track new sessions
// as soon as ingestion writes them.
type cachedReader struct {
	inner resolve.Reader
	cache *gocache.Cache
}

func newCachedReader(inner resolve.Reader, ttl time.Duration) *cachedReader {
	return &cachedReader{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *cachedReader) ListCharacters(ctx context.Context, campaignID string) ([]domain.Character, error) {
	key := "characters:" + campaignID
	if cached, found := c.cache.Get(key); found {
		return cached.([]domain.Character), nil
	}
	characters, err := c.inner.ListCharacters(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, characters)
	return characters, nil
}

func (c *cachedReader) ListAliases(ctx context.Context, campaignID string) ([]domain.Alias, error) {
	key := "aliases:" + campaignID
	if cached, found := c.cache.Get(key); found {
		return cached.([]domain.Alias), nil
	}
	aliases, err := c.inner.ListAliases(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, aliases)
	return aliases, nil
}

func (c *cachedReader) FindSessionByNumber(ctx context.Context, campaignID string, number int) (domain.Session, bool, error) {
	return c.inner.FindSessionByNumber(ctx, campaignID, number)
}

func (c *cachedReader) FindLatestSession(ctx context.Context, campaignID string) (domain.Session, bool, error) {
	return c.inner.FindLatestSession(ctx, campaignID)
}
