package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/domain"
)

const defaultTokenTtl = 24 * time.Hour

type impl struct {
	jwtSecret []byte
}

// New returns the auth usecase. With an empty secret every token is refused.
func New(jwtSecret string) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(jwtSecret),
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, ttl time.Duration) (string, error) {
	if len(im.jwtSecret) == 0 {
		return "", domain.ErrNoJwtSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTtl
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	if len(im.jwtSecret) == 0 {
		return "", domain.ErrNoJwtSecret
	}
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid && claims.Address != "" {
			return domain.Address(claims.Address), nil
		}
	}

	if err == nil {
		err = domain.ErrInvalidToken
	}
	return "", err
}
