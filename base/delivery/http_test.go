package delivery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ensrecords/domain"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid name", domain.NewError(domain.ErrKindInvalidName, "normalize", domain.ErrInvalidName), http.StatusBadRequest},
		{"invalid address", domain.NewError(domain.ErrKindInvalidAddress, "parse", domain.ErrInvalidAddress), http.StatusBadRequest},
		{"no resolver", domain.NewError(domain.ErrKindResolverNotFound, "set text", domain.ErrResolverNotFound), http.StatusNotFound},
		{"no account", domain.NewError(domain.ErrKindNoAccount, "set addr", domain.ErrNoAccount), http.StatusForbidden},
		{"unsupported network", xerrors.Errorf("ropsten: %w", domain.ErrUnsupportedNetwork), http.StatusBadRequest},
		{"operation failure", domain.NewError(domain.ErrKindGetTextRecord, "read", errors.New("timeout")), http.StatusInternalServerError},
		{"untagged", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestMakeJsonResp(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, MakeJsonResp(c, http.StatusOK, "ok"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"data":"ok","status":"success"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	err := domain.NewError(domain.ErrKindResolverNotFound, "set text", domain.ErrResolverNotFound)
	require.NoError(t, MakeJsonResp(c, http.StatusInternalServerError, err))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"data":{"message":"`+err.Error()+`","kind":"ResolverNotFound"},"status":"fail"}`, rec.Body.String())
}
