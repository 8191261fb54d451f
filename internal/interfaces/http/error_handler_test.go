package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

type captureLogger struct {
	noopLogger
	errorMsg  string
	errorArgs []any
}

func (l *captureLogger) Error(ctx context.Context, msg string, args ...any) {
	l.errorMsg = msg
	l.errorArgs = args
}

func handleError(t *testing.T, logger *captureLogger, err error) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(stdhttp.MethodGet, "/claims", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorHandler(logger)(err, c)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp.Error
}

func TestErrorHandler_TypedErrorPassesThrough(t *testing.T) {
	logger := &captureLogger{}
	rec, body := handleError(t, logger, domain.NewPermissionDenied())

	assert.Equal(t, stdhttp.StatusForbidden, rec.Code)
	assert.Equal(t, "Permission denied", body.Message)
	assert.Equal(t, stdhttp.StatusForbidden, body.StatusCode)
	assert.Equal(t, domain.CodePermissionDenied, body.Code)
	assert.Empty(t, logger.errorMsg, "typed errors are not re-logged")
}

func TestErrorHandler_SentinelNotFound(t *testing.T) {
	rec, body := handleError(t, &captureLogger{}, domain.ErrNotFound)

	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", body.Message)
	assert.Equal(t, domain.CodeNotFound, body.Code)
}

func TestErrorHandler_SentinelInvalidInput(t *testing.T) {
	rec, body := handleError(t, &captureLogger{}, domain.ErrInvalidInput)

	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.CodeValidationError, body.Code)
}

func TestErrorHandler_EchoNotFound(t *testing.T) {
	rec, body := handleError(t, &captureLogger{}, echo.ErrNotFound)

	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", body.Message)
	assert.Equal(t, domain.CodeNotFound, body.Code)
}

func TestErrorHandler_MethodNotAllowedFlattened(t *testing.T) {
	rec, body := handleError(t, &captureLogger{}, echo.ErrMethodNotAllowed)

	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Equal(t, domain.CodeNotFound, body.Code)
}

func TestErrorHandler_UnexpectedErrorIsLoggedAndMasked(t *testing.T) {
	logger := &captureLogger{}
	rec, body := handleError(t, logger, errors.New("connection reset by peer"))

	assert.Equal(t, stdhttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)
	assert.Equal(t, domain.CodeInternal, body.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
	assert.Equal(t, "unhandled request error", logger.errorMsg)
}
