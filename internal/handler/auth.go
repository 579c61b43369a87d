package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb-project/hbnb-api/internal/config"
	"github.com/hbnb-project/hbnb-api/internal/facade"
	"github.com/hbnb-project/hbnb-api/internal/metrics"
	"github.com/hbnb-project/hbnb-api/internal/utils"
)

// AuthHandler bundles dependencies for the login and protected endpoints.
type AuthHandler struct {
	Cfg config.Config
	F   *facade.Facade
}

func NewAuthHandler(cfg config.Config, f *facade.Facade) *AuthHandler {
	return &AuthHandler{Cfg: cfg, F: f}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a signed access token carrying the
// user id as subject and the is_admin claim. There is no refresh flow.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := bindStrict(c, &req); err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.F.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		metrics.Logins.WithLabelValues("failed").Inc()
		return writeError(c, err)
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.IsAdmin, h.Cfg.AccessTTLMin)
	if err != nil {
		return writeError(c, err)
	}
	metrics.Logins.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, echo.Map{"access_token": access.Token})
}

// Protected is a minimal bearer-gated endpoint returning a greeting for the
// authenticated user.
func (h *AuthHandler) Protected(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Hello, user " + actor.ID})
}
