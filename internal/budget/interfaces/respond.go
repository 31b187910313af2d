package interfaces

import (
	"log"
	"net/http"

	budgetErrors "github.com/sebuszqo/BudgetManager/internal/budget/errors"
)

type RespondJSONFunc func(w http.ResponseWriter, status int, payload interface{})
type RespondErrorFunc func(w http.ResponseWriter, status int, message string, errors ...[]string)

// respondServiceError maps the error taxonomy onto HTTP statuses. Validation,
// conflict and invalid-state problems carry their message to the client,
// anything else gets the generic fallback.
func respondServiceError(respondError RespondErrorFunc, w http.ResponseWriter, err error, fallback string) {
	switch {
	case budgetErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case budgetErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	case budgetErrors.IsInvalidStateError(err):
		respondError(w, http.StatusConflict, err.Error())
	case budgetErrors.IsConflictError(err):
		respondError(w, http.StatusConflict, err.Error())
	case budgetErrors.IsStaleWriteError(err):
		respondError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("Error during request handling: %v", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}

func userIDFromContext(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	return userID, ok
}
