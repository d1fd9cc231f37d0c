package regrid

import (
	gocache "github.com/patrickmn/go-cache"

	"github.com/domonda/go-regrid/internal/log"
)

// remapCache keeps built Remaps of one dataset
// for specs that have a CacheKey, so toggling
// back to an earlier sort does not sort again.
// Entries never expire, the cache is flushed
// when the dataset changes.
type remapCache struct {
	cache *gocache.Cache
}

func newRemapCache() *remapCache {
	return &remapCache{cache: gocache.New(gocache.NoExpiration, 0)}
}

func remapCacheKey(axis TableAxis, spec RemapSpec) (string, bool) {
	key, ok := spec.CacheKey()
	if !ok {
		return "", false
	}
	return axis.String() + "|" + key, true
}

func (c *remapCache) get(axis TableAxis, spec RemapSpec) (*Remap, bool) {
	key, ok := remapCacheKey(axis, spec)
	if !ok {
		return nil, false
	}
	value, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	remap, ok := value.(*Remap)
	if !ok {
		log.Error(log.CatRemap, "wrong type assertion when getting cached remap", "key", key)
		return nil, false
	}
	log.Debug(log.CatRemap, "cache hit", "key", key)
	return remap, true
}

func (c *remapCache) set(axis TableAxis, spec RemapSpec, remap *Remap) {
	if key, ok := remapCacheKey(axis, spec); ok {
		c.cache.Set(key, remap, gocache.NoExpiration)
	}
}

func (c *remapCache) len() int {
	return c.cache.ItemCount()
}

func (c *remapCache) flush() {
	c.cache.Flush()
}
