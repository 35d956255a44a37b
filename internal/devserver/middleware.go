package devserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUser resolves the User-Id header against the store and injects the
// caller's identity into context. Calls without a known user id are rejected.
func RequireUser(store *Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get("User-Id")
			if id == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing User-Id header")
			}
			user, ok := store.UserByID(id)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}
			c.Set("userID", user.UserID)
			c.Set("role", user.Role)
			return next(c)
		}
	}
}

// RBAC enforces role-based access control.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
