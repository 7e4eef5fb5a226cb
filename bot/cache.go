package bot

import (
	"encoding/json"
	"time"

	"github.com/coocood/freecache"
	"go.uber.org/zap"

	"github.com/lotterybot/lotterybot/service/draw"
)

var listingCacheKey = []byte("active_lotteries")

// listingCache keeps the rendered lottery listing out of the database for
// the burst of page flips a single user produces. Entries expire after a
// short TTL and are dropped eagerly when a participation changes a count.
//
// freecache rejects entries larger than 1/1024 of its total size, so the
// cache must be sized generously relative to the biggest listing.
type listingCache struct {
	cache  *freecache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func newListingCache(size int, ttl time.Duration, logger *zap.Logger) *listingCache {
	return &listingCache{
		cache:  freecache.NewCache(size),
		ttl:    ttl,
		logger: logger,
	}
}

func (c *listingCache) Get() ([]draw.LotterySummary, bool) {
	data, err := c.cache.Get(listingCacheKey)
	if err != nil {
		return nil, false
	}
	var summaries []draw.LotterySummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

func (c *listingCache) Set(summaries []draw.LotterySummary) {
	data, err := json.Marshal(summaries)
	if err != nil {
		c.logger.Error("marshaling lottery listing failed", zap.Error(err))
		return
	}
	err = c.cache.Set(listingCacheKey, data, int(c.ttl.Seconds()))
	if err != nil {
		c.logger.Warn("caching lottery listing failed",
			zap.Int("size", len(data)), zap.Error(err))
	}
}

func (c *listingCache) Invalidate() {
	c.cache.Del(listingCacheKey)
}
