package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/ptr"
	"github.com/x-xyz/ensrecords/domain/keys"
	"github.com/x-xyz/ensrecords/service/cache/provider"
	"github.com/x-xyz/ensrecords/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Name *string `json:"name"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	c := &value{}
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "key", c))

	sv, err := json.Marshal(value{ptr.String("vitalik.eth")})
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey("testing", "key"), sv, time.Minute))
	ts.NoError(ts.im.Get(mockCtx, "key", c))
	ts.Equal("vitalik.eth", *c.Name)
}

func (ts *testsuite) TestGet_corrupted() {
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey("testing", "key"), []byte("{"), time.Minute))
	ts.Error(ts.im.Get(mockCtx, "key", &value{}))
}

func (ts *testsuite) TestSetDel() {
	ts.NoError(ts.im.Set(mockCtx, "key", value{ptr.String("vitalik.eth")}))

	sv, ttl, err := ts.cache.Get(mockCtx, keys.RedisKey("testing", "key"))
	ts.NoError(err)
	ts.JSONEq(`{"name":"vitalik.eth"}`, string(sv))
	ts.True(ttl > 0 && ttl <= time.Minute)

	ts.NoError(ts.im.Del(mockCtx, "key"))
	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey("testing", "key"))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestGetByFunc() {
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &value{}, nil
	}

	for i := 0; i < 3; i++ {
		c := &value{Name: ptr.String("stale")}
		ts.NoError(ts.im.GetByFunc(mockCtx, "key", c, getter))
		ts.Nil(c.Name)
	}
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFunc_getterFailed() {
	err := ts.im.GetByFunc(mockCtx, "key", &value{}, func() (interface{}, error) {
		return nil, errors.New("rpc down")
	})
	ts.EqualError(err, "rpc down")
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "key", &value{}))
}

func (ts *testsuite) TestGetByFunc_corruptedEntry() {
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey("testing", "key"), []byte("{"), time.Minute))
	c := &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "key", c, func() (interface{}, error) {
		return &value{ptr.String("fresh.eth")}, nil
	}))
	ts.Equal("fresh.eth", *c.Name)
}
