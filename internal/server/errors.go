package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/applicant-scorer/internal/engine"
	"github.com/jonathan/applicant-scorer/internal/schemas"
	"github.com/jonathan/applicant-scorer/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Configuration shape problems are the caller's fault (400); unknown keys
// and records are 404; anything unrecognized is a 500.
func HTTPStatus(err error) int {
	var (
		configErr     *engine.ConfigurationError
		schemaErr     *schemas.ValidationError
		configMissing *store.ErrConfigNotFound
		orgMissing    *store.ErrOrgNotFound
		evalMissing   *store.ErrEvaluationNotFound
	)
	switch {
	case errors.As(err, &configErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &configMissing), errors.As(err, &orgMissing), errors.As(err, &evalMissing):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
