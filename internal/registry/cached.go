package registry

import (
	"context"
	"log"

	"trialscout/internal/domain"
)

// Cache stores raw registry response bodies keyed by query. A miss is
// (nil, false, nil); errors are reported but never block a fetch.
type Cache interface {
	Get(ctx context.Context, term string, pageSize int) ([]byte, bool, error)
	Put(ctx context.Context, term string, pageSize int, body []byte) error
}

// CachedClient serves searches from the cache when fresh, falling through to
// the real client on a miss. Cache failures degrade to plain fetches.
type CachedClient struct {
	Inner *Client
	Cache Cache
}

func (c *CachedClient) Search(ctx context.Context, term string, pageSize int) ([]domain.Study, error) {
	body, ok, err := c.Cache.Get(ctx, term, pageSize)
	if err != nil {
		log.Printf("level=warn msg=\"cache get failed\" term=%q err=%v", term, err)
	}
	if ok {
		return DecodeStudies(body)
	}

	body, err = c.Inner.Fetch(ctx, term, pageSize)
	if err != nil {
		return nil, err
	}
	if err := c.Cache.Put(ctx, term, pageSize, body); err != nil {
		log.Printf("level=warn msg=\"cache put failed\" term=%q err=%v", term, err)
	}
	return DecodeStudies(body)
}
