package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// AmenityStore mirrors the 'amenities' table.
type AmenityStore struct{ DB *sql.DB }

const amenityCols = "id,name,created_at,updated_at"

func (s *AmenityStore) Create(ctx context.Context, a *model.Amenity) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO amenities (id,name,created_at,updated_at) VALUES (?,?,?,?)",
		a.ID, a.Name, a.CreatedAt, a.UpdatedAt)
	return err
}

func (s *AmenityStore) Get(ctx context.Context, id string) (*model.Amenity, error) {
	return s.scanOne(ctx, "SELECT "+amenityCols+" FROM amenities WHERE id=? LIMIT 1", id)
}

func (s *AmenityStore) GetByName(ctx context.Context, name string) (*model.Amenity, error) {
	return s.scanOne(ctx, "SELECT "+amenityCols+" FROM amenities WHERE LOWER(name)=LOWER(?) LIMIT 1", name)
}

func (s *AmenityStore) scanOne(ctx context.Context, query string, arg any) (*model.Amenity, error) {
	var a model.Amenity
	err := s.DB.QueryRowContext(ctx, query, arg).Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("amenity")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AmenityStore) List(ctx context.Context) ([]*model.Amenity, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT "+amenityCols+" FROM amenities ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []*model.Amenity{}
	for rows.Next() {
		var a model.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (s *AmenityStore) Update(ctx context.Context, a *model.Amenity) error {
	res, err := s.DB.ExecContext(ctx,
		"UPDATE amenities SET name=?, updated_at=? WHERE id=?", a.Name, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := s.DB.QueryRowContext(ctx, "SELECT 1 FROM amenities WHERE id=?", a.ID).Scan(&one); errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("amenity")
		}
	}
	return nil
}

func (s *AmenityStore) Delete(ctx context.Context, id string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM place_amenities WHERE amenity_id=?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM amenities WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("amenity")
	}
	return tx.Commit()
}
