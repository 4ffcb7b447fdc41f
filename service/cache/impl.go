package cache

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/domain/keys"
	"github.com/x-xyz/ensrecords/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	serialize   Serializer
	deserialize Deserializer
}

func New(config ServiceConfig) Service {
	im := &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
	}
	if im.serialize == nil {
		im.serialize = json.Marshal
	}
	if im.deserialize == nil {
		im.deserialize = json.Unmarshal
	}
	return im
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	}
	if err != ErrNotFound {
		// a broken cache must not hide the source
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("Get failed, falling back to getter")
	}

	val, err := getter()
	if err != nil {
		return err
	}
	if err := im.Set(c, key, val); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("Set failed")
	}
	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)
	val, _, err := im.cache.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	if err := im.deserialize(val, container); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.pfx, key)
	val, err := im.serialize(value)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	return im.cache.Set(c, key, val, im.ttl)
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	return im.cache.Del(c, keys.RedisKey(im.pfx, key))
}
