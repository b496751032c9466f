package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func newTestContext(t *testing.T) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestFromContextPrefersStoredLogger(t *testing.T) {
	c := newTestContext(t)
	stored := zap.NewNop()
	c.Set(ContextKeyLogger, stored)

	if got := FromContext(c); got != stored {
		t.Error("expected the logger stored by the middleware")
	}
}

func TestFromContextReadsRequestIDSlot(t *testing.T) {
	c := newTestContext(t)
	c.Set(ContextKeyRequestID, "req-123")

	if got := FromContext(c); got == nil {
		t.Fatal("expected a fallback logger")
	}
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	c := newTestContext(t)

	if got := FromContext(c); got == nil {
		t.Fatal("expected a fallback logger without middleware state")
	}
}
