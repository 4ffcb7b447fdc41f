package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
}

type Option func(*options)

func WithBeforeStart(f func()) Option {
	return func(o *options) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a goroutine. A panic is logged with c and sent on
// the returned channel, which is closed without a value when f returns.
func RecoverableGo(c ctx.Ctx, f func(), fns ...Option) <-chan *PanicEvent {
	opts := options{}
	for _, fn := range fns {
		fn(&opts)
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if opts.afterEnded != nil {
				opts.afterEnded()
			}

			if p := recover(); p != nil {
				stack := debug.Stack()

				c.WithFields(log.Fields{
					"err":   p,
					"stack": string(stack),
				}).Error("panic")

				if opts.afterRecovered != nil {
					opts.afterRecovered(p, stack)
				}

				panicChan <- &PanicEvent{p, stack}
			}
			close(panicChan)
		}()

		if opts.beforeStart != nil {
			opts.beforeStart()
		}

		f()
	}()

	return panicChan
}
