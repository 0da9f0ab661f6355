package cache

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/domino14/wordfinder/config"
)

// The cache holds large, read-only objects that are expensive to build, such
// as word lists and letter distributions. Keys look like `kind:name`, e.g.
// `lexicon:twl` or `letterdist:english`. Loaded objects must never be
// mutated by callers; they are shared by every query.

type cache struct {
	sync.Mutex
	objects map[string]any
	// loads collapses concurrent misses on the same key into one load, while
	// different keys load in parallel.
	loads singleflight.Group
}

// LoadFunc builds the object for key.
type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

var createOnce sync.Once

func (c *cache) lookup(key string) (any, bool) {
	c.Lock()
	defer c.Unlock()
	obj, ok := c.objects[key]
	return obj, ok
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	if obj, ok := c.lookup(key); ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	obj, err, _ := c.loads.Do(key, func() (any, error) {
		if obj, ok := c.lookup(key); ok {
			return obj, nil
		}
		log.Debug().Str("key", key).Msg("loading into cache")
		obj, err := loadFunc(cfg, key)
		if err != nil {
			return nil, err
		}
		c.Lock()
		c.objects[key] = obj
		c.Unlock()
		return obj, nil
	})
	return obj, err
}

func (c *cache) purge(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func global() *cache {
	createOnce.Do(func() {
		GlobalObjectCache = &cache{objects: make(map[string]any)}
	})
	return GlobalObjectCache
}

// Load returns the cached object for key, calling loadFunc on a miss.
// Failed loads are not cached.
func Load(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	return global().get(cfg, key, loadFunc)
}

// Get is Load with the result asserted to T.
func Get[T any](cfg *config.Config, key string, loadFunc LoadFunc) (T, error) {
	var zero T
	obj, err := Load(cfg, key, loadFunc)
	if err != nil {
		return zero, err
	}
	t, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("cache key %s holds %T, not %T", key, obj, zero)
	}
	return t, nil
}

// Purge drops key so the next Load rebuilds it.
func Purge(key string) {
	global().purge(key)
}
