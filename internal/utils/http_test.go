package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/creditco/cupa/internal/pkg/errs"
)

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:51234"
	assert.Equal(t, "192.0.2.10", ClientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", ClientIP(req))
}

func TestDomainErrorResponse(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{name: "unauthorized", err: errs.Unauthorized("bad key"), code: http.StatusUnauthorized},
		{name: "forbidden", err: errs.Forbidden("not yours"), code: http.StatusForbidden},
		{name: "validation", err: errs.Validation("bad input"), code: http.StatusBadRequest},
		{name: "admission", err: errs.Admission("limit reached"), code: http.StatusUnprocessableEntity},
		{name: "not found", err: errs.NotFound("gone"), code: http.StatusNotFound},
		{name: "unclassified", err: errors.New("driver: connection lost"), code: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, DomainErrorResponse(c, tc.err))
			assert.Equal(t, tc.code, rec.Code)

			// Internal details never reach the caller.
			if tc.code == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "driver")
			}
		})
	}
}
