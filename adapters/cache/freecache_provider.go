package cache

import (
	"github.com/coocood/freecache"
	"go.uber.org/zap"

	"github.com/vere-app/vere/internal/application/service"
	"github.com/vere-app/vere/internal/config"
	"github.com/vere-app/vere/pkg/logger"
)

type freecacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

// NewFreecacheProvider builds the in-process rendered-page cache. A
// zero size disables caching entirely.
func NewFreecacheProvider(cfg config.Config, log logger.Logger) service.PageCache {
	if cfg.Cache.SizeMB <= 0 {
		log.Info("Page cache disabled")
		return &noopCache{}
	}

	ttl := int(cfg.Cache.PageTTL.Seconds())
	if ttl <= 0 {
		ttl = 30
	}

	log.Info("Page cache initialized",
		zap.Int("size_mb", cfg.Cache.SizeMB), zap.Int("ttl_seconds", ttl))

	return &freecacheProvider{
		cache: freecache.NewCache(cfg.Cache.SizeMB * 1024 * 1024),
		ttl:   ttl,
	}
}

func (c *freecacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *freecacheProvider) Set(key string, value []byte) {
	_ = c.cache.Set([]byte(key), value, c.ttl)
}

func (c *freecacheProvider) Del(key string) {
	c.cache.Del([]byte(key))
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
func (n *noopCache) Del(_ string)                {}
