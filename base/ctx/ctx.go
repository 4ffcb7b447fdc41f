package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/ensrecords/base/log"
)

type ctxKey string

// Ctx carries a context.Context together with a field logger, so every layer
// can log with the fields its callers attached.
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, e.g. one handed over by an http server.
func From(parent context.Context) Ctx {
	if c, ok := parent.(Ctx); ok {
		return c
	}
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, ctxKey(key), val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

// Value looks up keys set by WithValue as well as foreign keys.
func (c Ctx) Value(key interface{}) interface{} {
	if k, ok := key.(string); ok {
		return c.Context.Value(ctxKey(k))
	}
	return c.Context.Value(key)
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithLogFields only decorates the logger; the values are not readable via Value.
func WithLogFields(parent Ctx, fields log.Fields) Ctx {
	return Ctx{
		Context: parent.Context,
		Logger:  parent.Logger.WithFields(fields),
	}
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent.Context)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}
