package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/ensrecords/base/ctx"
)

var (
	ErrNotFound = errors.New("cache not found")
)

// Provider stores raw bytes. A ttl of 0 keeps the value until evicted.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
