package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// PlaceStore mirrors the 'places' table. The amenity set lives in the
// place_amenities join table; the review id list is derived from reviews
// rows ordered by posting time.
type PlaceStore struct{ DB *sql.DB }

const placeCols = "id,title,description,price,latitude,longitude,owner_id,created_at,updated_at"

func (s *PlaceStore) Create(ctx context.Context, p *model.Place) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO places (id,title,description,price,latitude,longitude,owner_id,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?,?)",
		p.ID, p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.OwnerID, p.CreatedAt, p.UpdatedAt); err != nil {
		return err
	}
	for _, amenityID := range p.Amenities {
		if _, err := tx.ExecContext(ctx,
			"INSERT IGNORE INTO place_amenities (place_id, amenity_id) VALUES (?,?)",
			p.ID, amenityID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *PlaceStore) Get(ctx context.Context, id string) (*model.Place, error) {
	var p model.Place
	err := s.DB.QueryRowContext(ctx,
		"SELECT "+placeCols+" FROM places WHERE id=? LIMIT 1", id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("place")
	}
	if err != nil {
		return nil, err
	}
	if err := s.fillRelations(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PlaceStore) fillRelations(ctx context.Context, p *model.Place) error {
	p.Amenities = []string{}
	rows, err := s.DB.QueryContext(ctx,
		"SELECT amenity_id FROM place_amenities WHERE place_id=?", p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		p.Amenities = append(p.Amenities, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	p.Reviews = []string{}
	rrows, err := s.DB.QueryContext(ctx,
		"SELECT id FROM reviews WHERE place_id=? ORDER BY created_at, id", p.ID)
	if err != nil {
		return err
	}
	defer rrows.Close()
	for rrows.Next() {
		var id string
		if err := rrows.Scan(&id); err != nil {
			return err
		}
		p.Reviews = append(p.Reviews, id)
	}
	return rrows.Err()
}

func (s *PlaceStore) List(ctx context.Context) ([]*model.Place, error) {
	return s.list(ctx, "SELECT "+placeCols+" FROM places ORDER BY created_at, id")
}

func (s *PlaceStore) ListByOwner(ctx context.Context, ownerID string) ([]*model.Place, error) {
	return s.list(ctx, "SELECT "+placeCols+" FROM places WHERE owner_id=? ORDER BY created_at, id", ownerID)
}

func (s *PlaceStore) list(ctx context.Context, query string, args ...any) ([]*model.Place, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []*model.Place{}
	for rows.Next() {
		var p model.Place
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range out {
		if err := s.fillRelations(ctx, p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *PlaceStore) Update(ctx context.Context, p *model.Place) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"UPDATE places SET title=?, description=?, price=?, latitude=?, longitude=?, updated_at=? WHERE id=?",
		p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := tx.QueryRowContext(ctx, "SELECT 1 FROM places WHERE id=?", p.ID).Scan(&one); errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("place")
		}
	}
	// Resync the amenity set. owner_id is immutable and the review list is
	// derived, so neither is written here.
	if _, err := tx.ExecContext(ctx, "DELETE FROM place_amenities WHERE place_id=?", p.ID); err != nil {
		return err
	}
	for _, amenityID := range p.Amenities {
		if _, err := tx.ExecContext(ctx,
			"INSERT IGNORE INTO place_amenities (place_id, amenity_id) VALUES (?,?)",
			p.ID, amenityID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *PlaceStore) Delete(ctx context.Context, id string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM place_amenities WHERE place_id=?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM places WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("place")
	}
	return tx.Commit()
}

// DetachReview completes the review deletion cascade. The review row itself
// is already gone (reviews.place_id is the back-reference), so only the
// place's updated_at needs refreshing.
func (s *PlaceStore) DetachReview(ctx context.Context, placeID, reviewID string) error {
	res, err := s.DB.ExecContext(ctx,
		"UPDATE places SET updated_at=UTC_TIMESTAMP() WHERE id=?", placeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("place")
	}
	return nil
}
