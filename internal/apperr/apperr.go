// Package apperr defines the error taxonomy shared by the model, facade and
// handler layers. Each error type corresponds to one HTTP status class so
// that handlers can translate any error coming out of the facade with a
// single mapping. Validators and relationship rules return these types
// directly; nothing in the facade catches or rewraps them.
package apperr

import (
	"errors"
	"net/http"
)

// ValidationError reports a bad field value or an unknown field in a
// payload. Field may be empty when the payload as a whole is malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a lookup by identifier that matched nothing.
type NotFoundError struct {
	Resource string // "user", "place", "amenity", "review"
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// NotFound builds a NotFoundError for the named resource kind.
func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ConflictError reports a uniqueness or business-rule violation, such as a
// duplicate email or a user reviewing their own place. It maps to 400, not
// 409: the public API treats these as bad requests.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// Conflict builds a ConflictError with the given reason.
func Conflict(reason string) *ConflictError { return &ConflictError{Reason: reason} }

// AuthorizationError reports a role or ownership check failure.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string { return e.Reason }

// Unauthorized builds an AuthorizationError. An empty reason defaults to the
// generic "unauthorized action" used across the API.
func Unauthorized(reason string) *AuthorizationError {
	if reason == "" {
		reason = "unauthorized action"
	}
	return &AuthorizationError{Reason: reason}
}

// AuthenticationError reports missing or bad credentials.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string { return e.Reason }

// Unauthenticated builds an AuthenticationError.
func Unauthenticated(reason string) *AuthenticationError {
	if reason == "" {
		reason = "invalid credentials"
	}
	return &AuthenticationError{Reason: reason}
}

// Status maps an error to the HTTP status code the boundary should emit.
// Unknown errors map to 500.
func Status(err error) int {
	var (
		ve *ValidationError
		nf *NotFoundError
		ce *ConflictError
		az *AuthorizationError
		an *AuthenticationError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &ce):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &az):
		return http.StatusForbidden
	case errors.As(err, &an):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
