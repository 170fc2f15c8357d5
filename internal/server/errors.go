// Package server provides the HTTP REST API for career assessments.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrSessionNotFound indicates the assessment session does not exist
type ErrSessionNotFound struct {
	SessionID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// ErrSessionMismatch indicates the bearer token belongs to a different session
type ErrSessionMismatch struct{}

func (e *ErrSessionMismatch) Error() string {
	return "token does not grant access to this session"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrSessionNotFound:
		return http.StatusNotFound
	case *ErrSessionMismatch:
		return http.StatusForbidden
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
