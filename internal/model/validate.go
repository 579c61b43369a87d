package model

import (
	"net/mail"
	"strings"

	"github.com/hbnb-project/hbnb-api/internal/apperr"
)

const (
	maxNameLen  = 50
	maxTitleLen = 100
)

// trimmedName validates a short name field (user first/last name, amenity
// name): non-empty after trimming and at most 50 characters.
func trimmedName(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", apperr.Invalid(field, "cannot be empty")
	}
	if len([]rune(v)) > maxNameLen {
		return "", apperr.Invalid(field, "too long")
	}
	return v, nil
}

// trimmedTitle validates a place title: non-empty after trimming and at most
// 100 characters.
func trimmedTitle(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", apperr.Invalid(field, "cannot be empty")
	}
	if len([]rune(v)) > maxTitleLen {
		return "", apperr.Invalid(field, "too long")
	}
	return v, nil
}

// trimmedText validates free text (place description, review text): it only
// has to be non-empty after trimming, there is no upper bound.
func trimmedText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", apperr.Invalid(field, "cannot be empty")
	}
	return v, nil
}

// emailAddress validates syntax only (local@domain). Deliverability is never
// checked; there is no network lookup. Display-name forms such as
// "Jane <jane@x.com>" are rejected because the stored value must be the bare
// address.
func emailAddress(value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", apperr.Invalid("email", "cannot be empty")
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return "", apperr.Invalid("email", "invalid email address")
	}
	return v, nil
}

// price must be finite and non-negative.
func price(value float64) (float64, error) {
	if value != value { // NaN
		return 0, apperr.Invalid("price", "must be a number")
	}
	if value < 0 {
		return 0, apperr.Invalid("price", "must not be negative")
	}
	return value, nil
}

// latitude is the inclusive range [-90, 90].
func latitude(value float64) (float64, error) {
	if value != value || value < -90.0 || value > 90.0 {
		return 0, apperr.Invalid("latitude", "must be in range -90.0 to 90.0")
	}
	return value, nil
}

// longitude is the inclusive range [-180, 180].
func longitude(value float64) (float64, error) {
	if value != value || value < -180.0 || value > 180.0 {
		return 0, apperr.Invalid("longitude", "must be in range -180.0 to 180.0")
	}
	return value, nil
}

// rating is an integer in the inclusive range [1, 5]. Non-integer JSON
// ratings never reach this function: they fail to bind into an int at the
// boundary.
func rating(value int) (int, error) {
	if value < 1 || value > 5 {
		return 0, apperr.Invalid("rating", "must be between 1 and 5")
	}
	return value, nil
}
