package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/employeeapp/employee-system/internal/api/metrics"
	"github.com/employeeapp/employee-system/internal/core/domain"
)

// RequireRoles rejects with 403 unless the authenticated roles intersect the
// required set. Must run after Auth.
func RequireRoles(required ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(required))
	for _, r := range required {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(CtxRoles).([]domain.Role)
			for _, r := range roles {
				if _, ok := allowed[r]; ok {
					return next(c)
				}
			}
			metrics.ForbiddenTotal.Inc()
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
	}
}
