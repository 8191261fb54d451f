package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type mockLogger struct {
	lastCtx  context.Context
	lastMsg  string
	lastArgs []any

	debugMsg  string
	debugArgs []any
}

func (m *mockLogger) Info(ctx context.Context, msg string, args ...any) {
	m.lastCtx = ctx
	m.lastMsg = msg
	m.lastArgs = args
}

func (m *mockLogger) Error(context.Context, string, ...any) {}
func (m *mockLogger) Warn(context.Context, string, ...any)  {}

func (m *mockLogger) Debug(_ context.Context, msg string, args ...any) {
	m.debugMsg = msg
	m.debugArgs = args
}

func TestRequestLogger_LogsExpectedFields(t *testing.T) {
	logger := &mockLogger{}
	mw := RequestLogger(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/claims", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/claims")

	h := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if logger.lastMsg != "http request" {
		t.Fatalf("unexpected log message: %s", logger.lastMsg)
	}
	fields := map[string]any{}
	for i := 0; i+1 < len(logger.lastArgs); i += 2 {
		key, _ := logger.lastArgs[i].(string)
		fields[key] = logger.lastArgs[i+1]
	}
	if fields["method"] != http.MethodGet {
		t.Fatalf("unexpected method field: %v", fields["method"])
	}
	if fields["path"] != "/claims" {
		t.Fatalf("unexpected path field: %v", fields["path"])
	}
	if fields["status"] != http.StatusCreated {
		t.Fatalf("unexpected status field: %v", fields["status"])
	}
}
