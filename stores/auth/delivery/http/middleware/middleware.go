package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	bCtx "github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/domain"
)

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Auth requires `Authorization: Bearer <token>` and sets the operator
// address as "address" on the echo context.
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(bCtx.Ctx)
	if ads, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("address", ads)
		c.Set("ctx", bCtx.WithLogFields(ctx, log.Fields{"operator": ads}))
		return true, nil
	}
}
