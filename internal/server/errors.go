// Package server provides the HTTP REST API for the placement-readiness analyzer.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/placement-readiness/internal/analyzer"
)

// ErrRecordNotFound indicates an analysis record was not found
type ErrRecordNotFound struct {
	ID uuid.UUID
}

func (e *ErrRecordNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrBadRequest indicates a malformed request body or parameter
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *analyzer.ValidationError:
		return http.StatusBadRequest
	case *ErrBadRequest:
		return http.StatusBadRequest
	case *ErrRecordNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
