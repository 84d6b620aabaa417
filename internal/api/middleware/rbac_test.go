package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/employeeapp/employee-system/internal/core/domain"
)

func rbacContext(e *echo.Echo, roles []domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if roles != nil {
		c.Set(CtxRoles, roles)
	}
	return c, rec
}

func TestRequireRoles_Allowed(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, []domain.Role{domain.RoleUser})

	called := false
	handler := RequireRoles(domain.RoleUser, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, []domain.Role{domain.RoleUser})

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoles_AdminPassesAdminGate(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, []domain.Role{domain.RoleAdmin, domain.RoleUser})

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_NoRolesInContext(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, nil)

	handler := RequireRoles(domain.RoleUser)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
