package utils

import (
	"encoding/json"
	"net/http"

	"github.com/eshonkulov-asliddin/bonus-shop/pkg/validate"
)

// Decode reads a JSON body into dst and validates it. On failure the error
// response is already written and false is returned.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if fields := validate.Struct(dst); fields != nil {
		RespondWithValidation(w, fields)
		return false
	}
	return true
}
