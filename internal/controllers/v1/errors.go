package v1

import (
	"errors"
	"net/http"

	"github.com/bucketly/backend/internal/engine"
	"github.com/bucketly/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrLedgerUnavailable) {
		return http.StatusServiceUnavailable
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrBucketNameNotUnique) || errors.Is(err, engine.ErrConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Allocation errors
var (
	errDirectionInvalid = errors.New("the allocation direction must be \"add\" or \"remove\"")
)
