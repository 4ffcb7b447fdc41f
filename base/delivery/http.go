package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ensrecords/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var kindStatus = map[domain.ErrKind]int{
	domain.ErrKindInvalidName:      http.StatusBadRequest,
	domain.ErrKindInvalidAddress:   http.StatusBadRequest,
	domain.ErrKindResolverNotFound: http.StatusNotFound,
	domain.ErrKindNoAccount:        http.StatusForbidden,
}

// StatusOf maps an error to the http status it is reported with.
func StatusOf(err error) int {
	if status, ok := kindStatus[domain.ErrKindOf(err)]; ok {
		return status
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnsupportedNetwork):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// MakeJsonResp writes data in the {data, status} envelope. Errors are
// rendered as their message together with their kind.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if status >= http.StatusInternalServerError {
			status = StatusOf(err)
		}
		body := map[string]interface{}{"message": err.Error()}
		if kind := domain.ErrKindOf(err); kind != "" {
			body["kind"] = kind
		}
		data = body
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
