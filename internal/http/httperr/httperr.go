// Package httperr maps domain errors onto HTTP status codes. Bodies are
// plain text, one line, the way http.Error writes them.
package httperr

import (
	"errors"
	"net/http"

	"github.com/remesahq/remesa/internal/apperror"
)

func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperror.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperror.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
