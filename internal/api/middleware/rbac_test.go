package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
)

func rbacContext(role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(CtxRole, role)
	}
	return c, rec
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	c, rec := rbacContext(domain.RoleAdmin)

	if err := RBAC(domain.RoleAdmin)(okHandler)(c); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_RejectsOtherRoles(t *testing.T) {
	for _, role := range []string{domain.RoleClient, "", "SUPERUSER"} {
		c, rec := rbacContext(role)

		if err := RBAC(domain.RoleAdmin)(okHandler)(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("role %q: expected 403, got %d", role, rec.Code)
		}
	}
}
