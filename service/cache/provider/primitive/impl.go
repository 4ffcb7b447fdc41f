package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive returns an in-process provider holding up to sizeMB megabytes.
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{
		name:  name,
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
	}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := im.cache.Get([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("freecache.Get failed")
		return nil, 0, err
	}
	left, err := im.cache.TTL([]byte(key))
	if err != nil {
		// expired in between
		return nil, 0, provider.ErrNotFound
	}
	return val, time.Duration(left) * time.Second, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, expireSeconds(ttl)); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

// freecache counts in whole seconds and reads 0 as no expiry
func expireSeconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	secs := int(ttl / time.Second)
	if secs == 0 {
		return 1
	}
	return secs
}
