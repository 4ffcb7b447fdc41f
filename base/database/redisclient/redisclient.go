package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/ensrecords/base/backoff"
	"github.com/x-xyz/ensrecords/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond

	// a few containers fail their first dial in k8s
	retryCount = 3
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	Retry          bool
}

// MustConnectRedis connects to one redis uri
// NOTE This function panics if the connection fails.
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis builds a pool for uri and checks one connection of it.
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxIdle := 200
	maxActive := 1024
	retry := false
	if len(param) > 0 && param[0].PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu*param[0].PoolMultiplier/4) + 1
		maxActive = int(cpu*param[0].PoolMultiplier) + 1
	}
	if len(param) > 0 {
		retry = param[0].Retry
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	b := backoff.NewExponential(time.Second, 8*time.Second)
	var err error
	for {
		if err = ping(p); err == nil {
			break
		}
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"retry":    b.Count(),
		}).Error("fail to dial Redis")
		if !retry || b.Count() >= retryCount {
			p.Close()
			return nil, err
		}
		_ = b.Wait(context.Background())
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")

	return p, nil
}

func ping(p *redis.Pool) error {
	c, err := p.Dial()
	if err != nil {
		return err
	}
	defer c.Close()
	_, err = c.Do("PING")
	return err
}
