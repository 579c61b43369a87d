package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/model"
)

// UserStore mirrors the 'users' table. The owned-place id list is not a
// column: it is derived from places.owner_id in listing order.
type UserStore struct{ DB *sql.DB }

const userCols = "id,first_name,last_name,email,password_hash,is_admin,created_at,updated_at"

func (s *UserStore) Create(ctx context.Context, u *model.User) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO users (id,first_name,last_name,email,password_hash,is_admin,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?)",
		u.ID, u.FirstName, u.LastName, strings.ToLower(u.Email), u.PasswordHash, u.IsAdmin, u.CreatedAt, u.UpdatedAt)
	return conflictOr(err, "email already registered")
}

func (s *UserStore) Get(ctx context.Context, id string) (*model.User, error) {
	return s.scanOne(ctx, "SELECT "+userCols+" FROM users WHERE id=? LIMIT 1", id)
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.scanOne(ctx, "SELECT "+userCols+" FROM users WHERE email=? LIMIT 1", strings.ToLower(email))
}

func (s *UserStore) scanOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := s.DB.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user")
	}
	if err != nil {
		return nil, err
	}
	if err := s.fillPlaces(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) fillPlaces(ctx context.Context, u *model.User) error {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id FROM places WHERE owner_id=? ORDER BY created_at, id", u.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	u.Places = []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		u.Places = append(u.Places, id)
	}
	return rows.Err()
}

func (s *UserStore) List(ctx context.Context) ([]*model.User, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT "+userCols+" FROM users ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []*model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, u := range out {
		if err := s.fillPlaces(ctx, u); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *UserStore) Update(ctx context.Context, u *model.User) error {
	res, err := s.DB.ExecContext(ctx,
		"UPDATE users SET first_name=?, last_name=?, email=?, password_hash=?, is_admin=?, updated_at=? WHERE id=?",
		u.FirstName, u.LastName, strings.ToLower(u.Email), u.PasswordHash, u.IsAdmin, u.UpdatedAt, u.ID)
	if err != nil {
		return conflictOr(err, "email already registered")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can also mean "no change"; confirm existence before
		// reporting not found.
		var one int
		if err := s.DB.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id=?", u.ID).Scan(&one); errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("user")
		}
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("user")
	}
	return nil
}
