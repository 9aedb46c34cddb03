package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeGlobalLogger(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.L()
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(previous) })
	return logs
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not_found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"wrapped_not_found", fmt.Errorf("rate order: %w", errs.NewObjectNotFoundError("order", "42")), http.StatusNotFound},
		{"invalid", errs.NewValueIsInvalidError("email"), http.StatusBadRequest},
		{"out_of_range", errs.NewValueIsOutOfRangeError("score", 9, 1, 5), http.StatusBadRequest},
		{"required", errs.NewValueIsRequiredError("reason"), http.StatusBadRequest},
		{"precondition", errs.NewPreconditionFailedError("order is delivered"), http.StatusBadRequest},
		{"unavailable", errs.NewObjectIsUnavailableError("product", "42"), http.StatusBadRequest},
		{"joined", errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsRequiredError("phone")), http.StatusBadRequest},
		{"echo", echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), http.StatusTooManyRequests},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func handleError(method string, err error) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, "/api/orders", nil), rec)
	ErrorHandler(err, c)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var body Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorHandler_ClientErrorIsFail(t *testing.T) {
	rec := handleError(http.MethodGet, errs.NewObjectNotFoundError("order", "42"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "fail", body.Status)
	assert.Contains(t, body.Message, "42")
	assert.Nil(t, body.Data)
}

func TestErrorHandler_ServerErrorHidesCause(t *testing.T) {
	logs := observeGlobalLogger(t)

	rec := handleError(http.MethodGet, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "internal server error", body.Message)

	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	rec := handleError(http.MethodHead, errs.NewObjectNotFoundError("order", "42"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSuccessList_CountsResults(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products", nil), rec)

	require.NoError(t, successList(c, "products", []string{"a", "b"}))

	body := decode(t, rec)
	assert.Equal(t, "success", body.Status)
	require.NotNil(t, body.Results)
	assert.Equal(t, 2, *body.Results)
	assert.Len(t, body.Data["products"], 2)
}
