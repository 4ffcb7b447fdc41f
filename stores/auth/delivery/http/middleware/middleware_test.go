package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/domain"
	mmiddleware "github.com/x-xyz/ensrecords/middleware"
	"github.com/x-xyz/ensrecords/stores/auth/usecase"
)

const operator = domain.Address("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")

type authSuite struct {
	suite.Suite

	e    *echo.Echo
	auth domain.AuthUsecase
}

func (s *authSuite) SetupTest() {
	s.auth = usecase.New("jwt-secret")
	s.e = echo.New()
	s.e.Use(mmiddleware.InitMiddleware().AddContext())
	s.e.PUT("/write", func(c echo.Context) error {
		return c.String(http.StatusOK, string(c.Get("address").(domain.Address)))
	}, New(s.auth).Auth())
}

func (s *authSuite) do(authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/write", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *authSuite) TestAuth() {
	tkn, err := s.auth.SignToken(ctx.Background(), operator, time.Hour)
	s.Require().NoError(err)

	rec := s.do("Bearer " + tkn)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(string(operator), rec.Body.String())
}

func (s *authSuite) TestAuth_missing() {
	rec := s.do("")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *authSuite) TestAuth_invalid() {
	tkn, err := usecase.New("other-secret").SignToken(ctx.Background(), operator, time.Hour)
	s.Require().NoError(err)

	s.Equal(http.StatusUnauthorized, s.do("Bearer "+tkn).Code)
	s.Equal(http.StatusUnauthorized, s.do("Bearer not-a-token").Code)
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(authSuite))
}
