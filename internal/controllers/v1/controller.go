// Package v1 implements the v1 HTTP API of the ledger.
package v1

import (
	"errors"
	"net/http"

	"github.com/archons/backend/internal/ledger"
	"github.com/archons/backend/internal/models"
)

// Controller holds the dependencies of the v1 handlers.
type Controller struct {
	Ledger *ledger.Service
}

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid positive integer"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrConstraintViolation) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}
