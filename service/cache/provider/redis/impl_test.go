package redis

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/metrics"
	"github.com/x-xyz/ensrecords/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type entry struct {
	val      []byte
	expireMs int64
}

// memConn answers the few commands the provider sends.
type memConn struct {
	mu   *sync.Mutex
	data map[string]*entry
	fail error
}

func (c *memConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	if cmd == "" {
		return nil, nil
	}
	if c.fail != nil {
		return nil, c.fail
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key := args[0].(string)
	switch cmd {
	case "GET":
		e, ok := c.data[key]
		if !ok {
			return nil, nil
		}
		return e.val, nil
	case "PTTL":
		e, ok := c.data[key]
		if !ok {
			return int64(-2), nil
		}
		if e.expireMs == 0 {
			return int64(-1), nil
		}
		return e.expireMs, nil
	case "SET":
		e := &entry{val: args[1].([]byte)}
		if len(args) == 4 && args[2] == "PX" {
			e.expireMs = args[3].(int64)
		}
		c.data[key] = e
		return "OK", nil
	case "DEL":
		_, ok := c.data[key]
		delete(c.data, key)
		if ok {
			return int64(1), nil
		}
		return int64(0), nil
	}
	return nil, errors.New("unexpected command " + cmd)
}

func (c *memConn) Close() error { return nil }
func (c *memConn) Err() error { return nil }
func (c *memConn) Send(cmd string, args ...interface{}) error { return nil }
func (c *memConn) Flush() error { return nil }
func (c *memConn) Receive() (interface{}, error) { return nil, nil }

type testsuite struct {
	suite.Suite
	im   *impl
	conn *memConn
}

func (ts *testsuite) SetupTest() {
	ts.conn = &memConn{mu: &sync.Mutex{}, data: make(map[string]*entry)}
	pool := &redis.Pool{
		Dial: func() (redis.Conn, error) { return ts.conn, nil },
	}
	ts.im = NewRedis("test", pool, metrics.New("test")).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), 3*time.Second))
	ts.Equal([]byte("value"), ts.conn.data["key"].val)
	ts.Equal(int64(3000), ts.conn.data["key"].expireMs)

	ts.NoError(ts.im.Set(mockCtx, "forever", []byte("value"), 0))
	ts.Zero(ts.conn.data["forever"].expireMs)
}

func (ts *testsuite) TestGet() {
	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)

	ts.conn.data["key"] = &entry{val: []byte("value"), expireMs: 1500}
	val, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), val)
	ts.Equal(1500*time.Millisecond, ttl)

	ts.conn.data["forever"] = &entry{val: []byte("value")}
	_, ttl, err = ts.im.Get(mockCtx, "forever")
	ts.NoError(err)
	ts.Zero(ttl)
}

func (ts *testsuite) TestGet_failed() {
	ts.conn.fail = errors.New("connection reset")
	_, _, err := ts.im.Get(mockCtx, "key")
	ts.EqualError(err, "connection reset")
}

func (ts *testsuite) TestDel() {
	ts.conn.data["key"] = &entry{val: []byte("value")}
	ts.NoError(ts.im.Del(mockCtx, "key"))
	ts.NotContains(ts.conn.data, "key")
}
