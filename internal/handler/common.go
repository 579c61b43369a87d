// Package handler implements the HTTP boundary: request binding, the
// error-to-status mapping for the apperr taxonomy, and per-resource
// handlers that delegate every domain decision to the facade and the
// authorization policy.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/middleware"
	"github.com/hbnb-project/hbnb-api/internal/policy"
)

// reqCtx bounds the duration of facade calls made on behalf of a request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// getActor extracts the authenticated principal stored by the JWT
// middleware. Handlers behind JWTAuth can rely on a non-empty ID.
func getActor(c echo.Context) (policy.Actor, error) {
	uid, _ := c.Get(middleware.CtxUserID).(string)
	if uid == "" {
		return policy.Actor{}, apperr.Unauthenticated("missing bearer token")
	}
	isAdmin, _ := c.Get(middleware.CtxIsAdmin).(bool)
	return policy.Actor{ID: uid, IsAdmin: isAdmin}, nil
}

// bindStrict decodes the JSON body into dst, rejecting unknown keys and type
// mismatches. Any decode failure — an extra field, a float where an int
// belongs, a malformed body — is reported uniformly as invalid input data.
func bindStrict(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.Invalid("", "invalid input data")
	}
	return nil
}

// writeError maps a domain error to its HTTP status and the uniform
// {"error": message} body. Unexpected errors are logged and masked.
func writeError(c echo.Context, err error) error {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.Path(), "error", err)
		return c.JSON(status, echo.Map{"error": "internal server error"})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
