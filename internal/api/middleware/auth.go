package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/employeeapp/employee-system/internal/api/metrics"
	"github.com/employeeapp/employee-system/internal/core/domain"
	"github.com/employeeapp/employee-system/internal/core/ports"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxUsername = "username"
	CtxRoles    = "roles"
)

// Auth validates the bearer token and injects the certified identity into
// the request context. Missing, malformed, badly signed and expired tokens
// all reject with 401 and a message matching the failure kind.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenValidationFailures.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenValidationFailures.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1], time.Now().UTC())
			if err != nil {
				return rejectToken(err)
			}

			c.Set(CtxUsername, claims.Subject)
			c.Set(CtxRoles, claims.Roles)

			return next(c)
		}
	}
}

func rejectToken(err error) error {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		metrics.TokenValidationFailures.WithLabelValues("expired").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
	case errors.Is(err, domain.ErrTokenBadSignature):
		metrics.TokenValidationFailures.WithLabelValues("bad_signature").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "token signature invalid")
	default:
		metrics.TokenValidationFailures.WithLabelValues("malformed").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "token malformed")
	}
}
