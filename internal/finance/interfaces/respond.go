package interfaces

import (
	"net/http"

	financeErrors "github.com/Desai0Aryan/finance-tracker/internal/finance/errors"
)

// statusForError maps the finance error taxonomy onto HTTP status codes.
// Anything unrecognized is treated as an internal error.
func statusForError(err error) int {
	switch {
	case financeErrors.IsValidationError(err):
		return http.StatusBadRequest
	case financeErrors.IsDuplicateEntityError(err):
		return http.StatusConflict
	case financeErrors.IsEntityInUseError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
