package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itam-platform/identity-service/internal/core/domain"
)

// RequireRole gates a route on exact role membership. No tier implies
// another: routes that accept several roles list every one of them.
func RequireRole(message string, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, message)
			}
			return next(c)
		}
	}
}

// AdminOnly and SuperAdminOnly keep the exact denial messages of the
// original API contract.
func AdminOnly() echo.MiddlewareFunc {
	return RequireRole("Access denied. Admins only.", domain.RoleAdmin)
}

func SuperAdminOnly() echo.MiddlewareFunc {
	return RequireRole("Access Denied", domain.RoleSuperAdmin)
}
