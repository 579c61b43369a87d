package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hbnb-project/hbnb-api/internal/facade"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// PageHandler serves the server-rendered HTML pages. The pages are read-only
// views over the same facade the API uses; login state lives in an
// access_token cookie managed by the login page script.
type PageHandler struct {
	F *facade.Facade
}

func NewPageHandler(f *facade.Facade) *PageHandler { return &PageHandler{F: f} }

// Index renders the place listing at / and /home.
func (h *PageHandler) Index(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	places, err := h.F.ListPlaces(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.Render(http.StatusOK, "index.html", echo.Map{"Places": places})
}

// Login renders the login form.
func (h *PageHandler) Login(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

// Logout expires the access_token cookie and redirects home.
func (h *PageHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		SameSite: http.SameSiteStrictMode,
	})
	return c.Redirect(http.StatusFound, "/")
}

// Place renders the detail page for one place, with its amenities, reviews
// and average rating.
func (h *PageHandler) Place(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.F.GetPlace(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	amenities := make([]*model.Amenity, 0, len(p.Amenities))
	for _, id := range p.Amenities {
		if a, err := h.F.GetAmenity(ctx, id); err == nil {
			amenities = append(amenities, a)
		}
	}
	reviews, err := h.F.ListReviewsByPlace(ctx, p.ID)
	if err != nil {
		return writeError(c, err)
	}
	avg, hasRating, err := h.F.AverageRating(ctx, p.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Render(http.StatusOK, "place.html", echo.Map{
		"Place":         p,
		"Amenities":     amenities,
		"Reviews":       reviews,
		"AverageRating": avg,
		"HasRating":     hasRating,
	})
}
