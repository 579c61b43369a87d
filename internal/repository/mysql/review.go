package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// ReviewStore mirrors the 'reviews' table. The unique (user_id, place_id)
// index enforces the one-review-per-place rule at write time.
type ReviewStore struct{ DB *sql.DB }

const reviewCols = "id,text,rating,place_id,user_id,created_at,updated_at"

func (s *ReviewStore) Create(ctx context.Context, r *model.Review) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO reviews (id,text,rating,place_id,user_id,created_at,updated_at) VALUES (?,?,?,?,?,?,?)",
		r.ID, r.Text, r.Rating, r.PlaceID, r.UserID, r.CreatedAt, r.UpdatedAt)
	return conflictOr(err, "you have already reviewed this place")
}

func (s *ReviewStore) Get(ctx context.Context, id string) (*model.Review, error) {
	var r model.Review
	err := s.DB.QueryRowContext(ctx,
		"SELECT "+reviewCols+" FROM reviews WHERE id=? LIMIT 1", id).Scan(
		&r.ID, &r.Text, &r.Rating, &r.PlaceID, &r.UserID, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("review")
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ReviewStore) List(ctx context.Context) ([]*model.Review, error) {
	return s.list(ctx, "SELECT "+reviewCols+" FROM reviews ORDER BY created_at, id")
}

func (s *ReviewStore) ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	return s.list(ctx, "SELECT "+reviewCols+" FROM reviews WHERE place_id=? ORDER BY created_at, id", placeID)
}

func (s *ReviewStore) ListByAuthor(ctx context.Context, userID string) ([]*model.Review, error) {
	return s.list(ctx, "SELECT "+reviewCols+" FROM reviews WHERE user_id=? ORDER BY created_at, id", userID)
}

func (s *ReviewStore) list(ctx context.Context, query string, args ...any) ([]*model.Review, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []*model.Review{}
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.ID, &r.Text, &r.Rating, &r.PlaceID, &r.UserID, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

func (s *ReviewStore) Update(ctx context.Context, r *model.Review) error {
	// place_id and user_id are immutable; only text and rating are written.
	res, err := s.DB.ExecContext(ctx,
		"UPDATE reviews SET text=?, rating=?, updated_at=? WHERE id=?",
		r.Text, r.Rating, r.UpdatedAt, r.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := s.DB.QueryRowContext(ctx, "SELECT 1 FROM reviews WHERE id=?", r.ID).Scan(&one); errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("review")
		}
	}
	return nil
}

func (s *ReviewStore) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("review")
	}
	return nil
}
