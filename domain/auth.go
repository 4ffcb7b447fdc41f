package domain

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/ensrecords/base/ctx"
)

// JwtCustomClaims identifies the operator a write token was issued to.
type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, address Address, ttl time.Duration) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address Address, err error)
}
