package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb-project/hbnb-api/internal/facade"
	"github.com/hbnb-project/hbnb-api/internal/metrics"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// AdminHandler serves the admin surface. Routes using it sit behind both the
// JWT middleware and the admin gate, so every request here already carries a
// verified admin token; the handlers only add the admin-specific payloads
// (is_admin on create, unrestricted user patches, place updates for any
// owner).
type AdminHandler struct {
	F *facade.Facade
}

func NewAdminHandler(f *facade.Facade) *AdminHandler { return &AdminHandler{F: f} }

type adminCreateUserReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

// CreateUser registers a user through the admin surface; unlike public
// registration it may set the admin flag.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req adminCreateUserReq
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
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return writeError(c, err)
	}
	metrics.EntitiesCreated.WithLabelValues("user").Inc()
	return c.JSON(http.StatusCreated, echo.Map{"id": u.ID})
}

// UpdateUser applies an unrestricted patch to any user, including email,
// password and the admin flag.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var patch model.UserPatch
	if err := bindStrict(c, &patch); err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.F.UpdateUser(ctx, c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResp(u))
}

// DeleteUser removes a user record.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.F.DeleteUser(ctx, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	metrics.EntitiesDeleted.WithLabelValues("user").Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}

// CreateAmenity registers an amenity through the admin surface.
func (h *AdminHandler) CreateAmenity(c echo.Context) error {
	var req amenityReq
	if err := bindStrict(c, &req); err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.F.CreateAmenity(ctx, req.Name)
	if err != nil {
		return writeError(c, err)
	}
	metrics.EntitiesCreated.WithLabelValues("amenity").Inc()
	return c.JSON(http.StatusCreated, amenityResp{ID: a.ID, Name: a.Name})
}

// UpdateAmenity renames an amenity through the admin surface.
func (h *AdminHandler) UpdateAmenity(c echo.Context) error {
	var patch model.AmenityPatch
	if err := bindStrict(c, &patch); err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.F.UpdateAmenity(ctx, c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, amenityResp{ID: a.ID, Name: a.Name})
}

// DeleteAmenity removes an amenity and detaches it from every place.
func (h *AdminHandler) DeleteAmenity(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.F.DeleteAmenity(ctx, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	metrics.EntitiesDeleted.WithLabelValues("amenity").Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": "amenity deleted"})
}

// UpdatePlace modifies any place regardless of ownership. The owner reference
// stays immutable even here.
func (h *AdminHandler) UpdatePlace(c echo.Context) error {
	var patch model.PlacePatch
	if err := bindStrict(c, &patch); err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.F.UpdatePlace(ctx, c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toPlaceDetail(p, nil))
}

// DeletePlace removes a place together with its reviews and the owner's
// back-reference.
func (h *AdminHandler) DeletePlace(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.F.DeletePlace(ctx, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	metrics.EntitiesDeleted.WithLabelValues("place").Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": "place deleted"})
}
