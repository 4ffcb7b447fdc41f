package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/base/metrics"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	met metrics.Service
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{met: metrics.New("http")}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		return next(c)
	}
}

// AddContext puts a ctx.Ctx carrying the request id into the echo context.
// A request id is generated when no upstream middleware set one.
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if requestID == "" {
				requestID = uuid.NewString()
				c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			}
			cont := ctx.WithValue(ctx.From(c.Request().Context()), "requestID", requestID)
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer m.met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    req.Header.Get("Referer"),
			}

			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			logger, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				logger = ctx.Background()
			}
			logger.WithFields(fields).Info("response")
			return nil
		}
	}
}
