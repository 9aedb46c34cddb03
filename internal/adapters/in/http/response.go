package http

import (
	"errors"
	"fmt"
	"net/http"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

// Envelope wraps every JSON response. Data is set on success, Message on
// failure. Results counts the items of list responses.
type Envelope struct {
	Status  string         `json:"status"`
	Results *int           `json:"results,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
}

func success(c echo.Context, code int, key string, value any) error {
	return c.JSON(code, Envelope{Status: statusSuccess, Data: map[string]any{key: value}})
}

func successList[T any](c echo.Context, key string, items []T) error {
	n := len(items)
	return c.JSON(http.StatusOK, Envelope{Status: statusSuccess, Results: &n, Data: map[string]any{key: items}})
}

// StatusCode maps an error onto the HTTP status the API reports for it.
func StatusCode(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrPreconditionFailed),
		errors.Is(err, errs.ErrObjectIsUnavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders errors as fail (4xx) or error (5xx) envelopes. Server
// errors are logged with the request id and reported without internals.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := StatusCode(err)
	body := Envelope{Status: statusFail, Message: message(err)}
	if code >= http.StatusInternalServerError {
		logger.FromCtx(c.Request().Context()).Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		body = Envelope{Status: statusError, Message: "internal server error"}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		logger.FromCtx(c.Request().Context()).Warn("error response not written", zap.Error(err))
	}
}

func message(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			return m
		}
		return fmt.Sprint(httpErr.Message)
	}
	return err.Error()
}
