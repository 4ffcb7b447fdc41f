package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/base/metrics"
	"github.com/x-xyz/ensrecords/service/cache/provider"
)

const (
	// PTTL replies for a missing key and for a key without expiry
	pttlNoKey    = -2
	pttlNoExpire = -1
)

type impl struct {
	name string
	pool *redis.Pool
	met  metrics.Service
}

func NewRedis(name string, pool *redis.Pool, met metrics.Service) provider.Provider {
	return &impl{
		name: name,
		pool: pool,
		met:  met,
	}
}

func (im *impl) do(c ctx.Ctx, command string, args ...interface{}) (interface{}, error) {
	defer im.met.BumpTime("time", "func", command, "cluster", im.name).End()
	conn, err := im.pool.GetContext(c)
	if err != nil {
		im.met.BumpSum("getconn.err", 1, "cluster", im.name)
		c.WithFields(log.Fields{"err": err, "cluster": im.name}).Error("pool.GetContext failed")
		return nil, err
	}
	defer conn.Close()
	return conn.Do(command, args...)
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := redis.Bytes(im.do(c, "GET", key))
	if err == redis.ErrNil {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis GET failed")
		return nil, 0, err
	}

	ms, err := redis.Int64(im.do(c, "PTTL", key))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis PTTL failed")
		return nil, 0, err
	}
	switch ms {
	case pttlNoKey:
		return nil, 0, provider.ErrNotFound
	case pttlNoExpire:
		return val, 0, nil
	}
	return val, time.Duration(ms) * time.Millisecond, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	im.met.BumpHistogram("bytes", float64(len(value)), "cluster", im.name)
	var err error
	if ttl > 0 {
		_, err = im.do(c, "SET", key, value, "PX", int64(ttl/time.Millisecond))
	} else {
		_, err = im.do(c, "SET", key, value)
	}
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis SET failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if _, err := im.do(c, "DEL", key); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis DEL failed")
		return err
	}
	return nil
}
