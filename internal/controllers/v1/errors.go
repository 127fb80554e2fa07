package v1

import (
	"errors"
	"net/http"

	"github.com/budget-buddy/backend/internal/auth"
	"github.com/budget-buddy/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral), errors.Is(err, models.ErrDatabaseBusy):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrTokenInvalid), errors.Is(err, auth.ErrTokenMissing):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrPasswordIncorrect):
		return http.StatusForbidden
	case errors.Is(err, models.ErrEmailNotUnique):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var errDeleteConfirmation = errors.New("the confirmation for deleting your user was incorrect")

// Query errors
var (
	errSortInvalid  = errors.New("the sort parameter must be one of date, amount, type or category")
	errOrderInvalid = errors.New("the order parameter must be asc or desc")
)
