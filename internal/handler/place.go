package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb-project/hbnb-api/internal/facade"
	"github.com/hbnb-project/hbnb-api/internal/metrics"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// PlaceHandler serves the place resource: public browsing plus authenticated
// creation and owner/admin-gated updates.
type PlaceHandler struct {
	F *facade.Facade
}

func NewPlaceHandler(f *facade.Facade) *PlaceHandler { return &PlaceHandler{F: f} }

// createPlaceReq deliberately has no owner_id: the owner is always the
// authenticated user and can never be set or reassigned via payload.
type createPlaceReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Amenities   []string `json:"amenities"`
}

type placeBrief struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type placeDetail struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	OwnerID       string   `json:"owner_id"`
	Amenities     []string `json:"amenities"`
	Reviews       []string `json:"reviews"`
	AverageRating *float64 `json:"average_rating"`
}

func toPlaceDetail(p *model.Place, avg *float64) placeDetail {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	reviews := p.Reviews
	if reviews == nil {
		reviews = []string{}
	}
	return placeDetail{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		OwnerID:       p.OwnerID,
		Amenities:     amenities,
		Reviews:       reviews,
		AverageRating: avg,
	}
}

// Create lists a new place owned by the authenticated user.
func (h *PlaceHandler) Create(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return writeError(c, err)
	}
	var req createPlaceReq
	if err := bindStrict(c, &req); err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.F.CreatePlace(ctx, facade.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     actor.ID,
		Amenities:   req.Amenities,
	})
	if err != nil {
		return writeError(c, err)
	}
	metrics.EntitiesCreated.WithLabelValues("place").Inc()
	return c.JSON(http.StatusCreated, toPlaceDetail(p, nil))
}

// List returns all places in brief form.
func (h *PlaceHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	places, err := h.F.ListPlaces(ctx)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]placeBrief, 0, len(places))
	for _, p := range places {
		out = append(out, placeBrief{ID: p.ID, Title: p.Title, Latitude: p.Latitude, Longitude: p.Longitude})
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one place in detail, including its average rating (null when
// the place has no reviews yet).
func (h *PlaceHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.F.GetPlace(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	var avg *float64
	if mean, ok, err := h.F.AverageRating(ctx, p.ID); err == nil && ok {
		avg = &mean
	}
	return c.JSON(http.StatusOK, toPlaceDetail(p, avg))
}

// ListReviews returns the reviews posted on a place, in posting order.
func (h *PlaceHandler) ListReviews(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.F.ListReviewsByPlace(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	out := make([]reviewResp, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResp(r))
	}
	return c.JSON(http.StatusOK, out)
}

// Update modifies a place. Only the owner or an admin may do so; the owner
// reference itself is immutable.
func (h *PlaceHandler) Update(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return writeError(c, err)
	}
	var patch model.PlacePatch
	if err := bindStrict(c, &patch); err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.F.GetPlace(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if err := actor.CanModifyPlace(p); err != nil {
		return writeError(c, err)
	}
	updated, err := h.F.UpdatePlace(ctx, p.ID, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toPlaceDetail(updated, nil))
}
