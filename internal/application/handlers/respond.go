package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GY-CODING/heralds-of-chaos-web/internal/domain/entities"
)

type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Error: message})
}

// respondServiceError maps a service failure to a status code. Caller
// errors are 400; everything else carries the service's stable message
// with a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, entities.ErrIdentifierRequired) || errors.Is(err, entities.ErrWorldIDRequired) {
		status = http.StatusBadRequest
	}
	respondError(w, status, err.Error())
}

func respondNotFound(w http.ResponseWriter, kind string) {
	respondError(w, http.StatusNotFound, kind+" not found")
}
