package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRBAC(t *testing.T, role interface{}, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	handler := RBAC(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestRBAC(t *testing.T) {
	if rec := runRBAC(t, "admin", "admin"); rec.Code != http.StatusOK {
		t.Fatalf("admin should pass, got %d", rec.Code)
	}
	if rec := runRBAC(t, "user", "admin"); rec.Code != http.StatusForbidden {
		t.Fatalf("plain user should be rejected, got %d", rec.Code)
	}
	if rec := runRBAC(t, nil, "admin"); rec.Code != http.StatusForbidden {
		t.Fatalf("missing role should be rejected, got %d", rec.Code)
	}
	if rec := runRBAC(t, 42, "admin"); rec.Code != http.StatusForbidden {
		t.Fatalf("non-string role should be rejected, got %d", rec.Code)
	}
	if rec := runRBAC(t, "user", "admin", "user"); rec.Code != http.StatusOK {
		t.Fatalf("user should pass when listed, got %d", rec.Code)
	}
}
