package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/employeeapp/employee-system/internal/api/middleware"
	"github.com/employeeapp/employee-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty username and a non-empty
// role set prove the middleware ran.
func ctxIdentity(c echo.Context) (username string, roles []domain.Role, err error) {
	username, _ = c.Get(middleware.CtxUsername).(string)
	roles, _ = c.Get(middleware.CtxRoles).([]domain.Role)
	if username == "" || len(roles) == 0 {
		return "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, roles, nil
}
