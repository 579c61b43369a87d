package middleware

// identity.go provides the client identity used for rate-limit bucketing:
// the authenticated user id when JWTAuth ran earlier in the chain, otherwise
// the client IP.

import "github.com/labstack/echo/v4"

// clientID returns a stable identifier for the requester.
func clientID(c echo.Context) string {
	if uid, ok := c.Get(CtxUserID).(string); ok && uid != "" {
		return uid
	}
	return "ip:" + c.RealIP()
}
