package listingcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"revclone/internal/cloner"
	"revclone/internal/reverb"
)

const (
	listingTTL = 15 * time.Minute
	keyPrefix  = "revclone:listing:"
)

// CachedFetcher guarda o JSON do anúncio de origem no Redis. Referências
// duplicadas no mesmo batch (ou batches repetidos em sequência) deixam de
// gastar cota da API. Erros de cache são ignorados: o fetch real decide.
type CachedFetcher struct {
	Client *redis.Client
	Next   cloner.Fetcher
}

func (c *CachedFetcher) FetchListing(id string) (*reverb.SourceListing, error) {
	ctx := context.Background()

	if val, err := c.Client.Get(ctx, keyPrefix+id).Result(); err == nil {
		var src reverb.SourceListing
		if json.Unmarshal([]byte(val), &src) == nil {
			return &src, nil
		}
	}

	src, err := c.Next.FetchListing(id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(src); err == nil {
		c.Client.Set(ctx, keyPrefix+id, b, listingTTL)
	}

	return src, nil
}
