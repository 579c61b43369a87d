package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/facade"
	"github.com/hbnb-project/hbnb-api/internal/metrics"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// UserHandler serves the public user resource plus the authenticated
// self-service update path.
type UserHandler struct {
	F *facade.Facade
}

func NewUserHandler(f *facade.Facade) *UserHandler { return &UserHandler{F: f} }

// registerReq is the public registration payload. is_admin is deliberately
// absent: only the admin surface can mint admins.
type registerReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type userResp struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Places    []string `json:"places"`
}

func toUserResp(u *model.User) userResp {
	places := u.Places
	if places == nil {
		places = []string{}
	}
	return userResp{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Places:    places,
	}
}

// Register creates a user through the public surface.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := bindStrict(c, &req); err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.F.CreateUser(ctx, facade.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	metrics.EntitiesCreated.WithLabelValues("user").Inc()
	return c.JSON(http.StatusCreated, echo.Map{"id": u.ID})
}

// List returns all users.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	users, err := h.F.ListUsers(ctx)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]userResp, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResp(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one user by id.
func (h *UserHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.F.GetUser(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResp(u))
}

// Update is the authenticated self-service path: a non-admin may only update
// their own record and may not touch email, password or is_admin — those
// fields require the admin surface. Admins may update anyone here too, with
// the full field set.
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return writeError(c, err)
	}
	targetID := c.Param("id")
	if err := actor.CanUpdateUser(targetID); err != nil {
		return writeError(c, err)
	}
	var patch model.UserPatch
	if err := bindStrict(c, &patch); err != nil {
		return writeError(c, err)
	}
	if !actor.IsAdmin && (patch.Email != nil || patch.Password != nil || patch.IsAdmin != nil) {
		return writeError(c, apperr.Invalid("", "you cannot modify email or password"))
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.F.UpdateUser(ctx, targetID, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResp(u))
}
