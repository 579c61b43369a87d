package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb-project/hbnb-api/internal/facade"
	"github.com/hbnb-project/hbnb-api/internal/metrics"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// AmenityHandler serves the public amenity surface. The same operations also
// exist admin-gated under /admin (see AdminHandler); both surfaces coexist.
type AmenityHandler struct {
	F *facade.Facade
}

func NewAmenityHandler(f *facade.Facade) *AmenityHandler { return &AmenityHandler{F: f} }

type amenityReq struct {
	Name string `json:"name"`
}

type amenityResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Create registers a new amenity (public variant).
func (h *AmenityHandler) Create(c echo.Context) error {
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

// List returns all amenities.
func (h *AmenityHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	amenities, err := h.F.ListAmenities(ctx)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]amenityResp, 0, len(amenities))
	for _, a := range amenities {
		out = append(out, amenityResp{ID: a.ID, Name: a.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one amenity by id.
func (h *AmenityHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.F.GetAmenity(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, amenityResp{ID: a.ID, Name: a.Name})
}

// Update renames an amenity (public variant).
func (h *AmenityHandler) Update(c echo.Context) error {
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
