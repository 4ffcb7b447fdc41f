package compound

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/service/cache/provider"
	"github.com/x-xyz/ensrecords/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type brokenProvider struct{}

func (brokenProvider) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	return nil, 0, errors.New("broken")
}

func (brokenProvider) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	return errors.New("broken")
}

func (brokenProvider) Del(c ctx.Ctx, key string) error {
	return errors.New("broken")
}

type testsuite struct {
	suite.Suite
	im   *impl
	near provider.Provider
	far  provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.near = primitive.NewPrimitive("near", 1)
	ts.far = primitive.NewPrimitive("far", 1)
	ts.im = NewCompound(ts.near, ts.far).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet_backfills() {
	ts.NoError(ts.far.Set(mockCtx, "key", []byte("value"), time.Minute))

	val, ttl, err := ts.im.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), val)
	ts.True(ttl > 0)

	val, _, err = ts.near.Get(mockCtx, "key")
	ts.NoError(err)
	ts.Equal([]byte("value"), val)
}

func (ts *testsuite) TestGet_miss() {
	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSetDel() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("value"), time.Minute))
	for _, lyr := range []provider.Provider{ts.near, ts.far} {
		_, _, err := lyr.Get(mockCtx, "key")
		ts.NoError(err)
	}

	ts.NoError(ts.im.Del(mockCtx, "key"))
	for _, lyr := range []provider.Provider{ts.near, ts.far} {
		_, _, err := lyr.Get(mockCtx, "key")
		ts.Equal(provider.ErrNotFound, err)
	}
}

func (ts *testsuite) TestGet_layerError() {
	im := NewCompound(ts.near, brokenProvider{})
	_, _, err := im.Get(mockCtx, "key")
	ts.EqualError(err, "broken")
	ts.Error(im.Set(mockCtx, "key", []byte("v"), 0))
}
