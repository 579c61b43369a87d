package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hbnb-project/hbnb-api/internal/facade"
	"github.com/hbnb-project/hbnb-api/internal/metrics"
	"github.com/hbnb-project/hbnb-api/internal/model"
	"github.com/hbnb-project/hbnb-api/internal/queue"
	"github.com/hbnb-project/hbnb-api/internal/service"
)

// ReviewHandler serves the review resource. All mutation paths are
// bearer-gated and authorship-bound.
type ReviewHandler struct {
	F *facade.Facade
}

func NewReviewHandler(f *facade.Facade) *ReviewHandler { return &ReviewHandler{F: f} }

// createReviewReq carries no user_id: the author is always the authenticated
// user.
type createReviewReq struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
}

type reviewResp struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

func toReviewResp(r *model.Review) reviewResp {
	return reviewResp{ID: r.ID, Text: r.Text, Rating: r.Rating, PlaceID: r.PlaceID, UserID: r.UserID}
}

// Create posts a review authored by the authenticated user. A review.posted
// event is published best-effort after the write; publish failures never fail
// the request.
func (h *ReviewHandler) Create(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return writeError(c, err)
	}
	var req createReviewReq
	if err := bindStrict(c, &req); err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	r, err := h.F.CreateReview(ctx, facade.CreateReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		PlaceID: req.PlaceID,
		UserID:  actor.ID,
	})
	if err != nil {
		return writeError(c, err)
	}
	metrics.EntitiesCreated.WithLabelValues("review").Inc()

	title := ""
	if p, err := h.F.GetPlace(ctx, r.PlaceID); err == nil {
		title = p.Title
	}
	go func(ev queue.ReviewPostedEvent) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = service.PublishReviewPosted(pubCtx, ev)
	}(queue.ReviewPostedEvent{
		ReviewID:   r.ID,
		PlaceID:    r.PlaceID,
		PlaceTitle: title,
		UserID:     r.UserID,
		Rating:     r.Rating,
		PostedAt:   r.CreatedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, toReviewResp(r))
}

// List returns all reviews in posting order.
func (h *ReviewHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.F.ListReviews(ctx)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]reviewResp, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResp(r))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one review by id.
func (h *ReviewHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	r, err := h.F.GetReview(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toReviewResp(r))
}

// Update edits a review's text or rating. Only the author may do so; admins
// have no override here.
func (h *ReviewHandler) Update(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return writeError(c, err)
	}
	var patch model.ReviewPatch
	if err := bindStrict(c, &patch); err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	r, err := h.F.GetReview(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if err := actor.CanMutateReview(r); err != nil {
		return writeError(c, err)
	}
	updated, err := h.F.UpdateReview(ctx, r.ID, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toReviewResp(updated))
}

// Delete removes a review (author only) and detaches it from its place.
func (h *ReviewHandler) Delete(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return writeError(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	r, err := h.F.GetReview(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if err := actor.CanMutateReview(r); err != nil {
		return writeError(c, err)
	}
	if err := h.F.DeleteReview(ctx, r.ID); err != nil {
		return writeError(c, err)
	}
	metrics.EntitiesDeleted.WithLabelValues("review").Inc()
	return c.JSON(http.StatusOK, echo.Map{"message": "review deleted"})
}
