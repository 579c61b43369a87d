package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin enforces that the authenticated user carries the is_admin
// claim. It assumes JWTAuth already ran and stored the flag in the context;
// a missing or false flag yields 403.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, ok := c.Get(CtxIsAdmin).(bool)
			if !ok || !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "admin privileges required"})
			}
			return next(c)
		}
	}
}
