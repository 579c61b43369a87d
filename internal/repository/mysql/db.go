// Package mysql implements the repository contracts on top of MySQL using
// database/sql. Unique indexes on users.email and reviews(user_id, place_id)
// are the authoritative arbiters of uniqueness: the facade checks first, but
// a concurrent writer losing the race still surfaces a ConflictError here.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
	"github.com/hbnb-project/hbnb-api/internal/repository"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// New returns a Stores bundle backed by the given database handle.
func New(db *sql.DB) repository.Stores {
	return repository.Stores{
		Users:     &UserStore{DB: db},
		Places:    &PlaceStore{DB: db},
		Amenities: &AmenityStore{DB: db},
		Reviews:   &ReviewStore{DB: db},
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL DEFAULT '',
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS places (
		id CHAR(36) PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		price DOUBLE NOT NULL,
		latitude DOUBLE NOT NULL,
		longitude DOUBLE NOT NULL,
		owner_id CHAR(36) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		KEY idx_places_owner (owner_id),
		CONSTRAINT fk_places_owner FOREIGN KEY (owner_id) REFERENCES users(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS amenities (
		id CHAR(36) PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id CHAR(36) PRIMARY KEY,
		text TEXT NOT NULL,
		rating TINYINT NOT NULL,
		place_id CHAR(36) NOT NULL,
		user_id CHAR(36) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE KEY uq_reviews_user_place (user_id, place_id),
		KEY idx_reviews_place (place_id),
		CONSTRAINT fk_reviews_place FOREIGN KEY (place_id) REFERENCES places(id),
		CONSTRAINT fk_reviews_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS place_amenities (
		place_id CHAR(36) NOT NULL,
		amenity_id CHAR(36) NOT NULL,
		PRIMARY KEY (place_id, amenity_id),
		CONSTRAINT fk_pa_place FOREIGN KEY (place_id) REFERENCES places(id),
		CONSTRAINT fk_pa_amenity FOREIGN KEY (amenity_id) REFERENCES amenities(id)
	) ENGINE=InnoDB`,
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// isDup reports whether err is a MySQL duplicate-key violation (error 1062).
func isDup(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// conflictOr translates duplicate-key errors into the domain conflict.
func conflictOr(err error, reason string) error {
	if isDup(err) {
		return apperr.Conflict(reason)
	}
	return err
}
