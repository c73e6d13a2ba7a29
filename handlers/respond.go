package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"wifispots-server/model"
)

// errorPayload is the stable error schema of the API tier. Internal store
// errors never reach clients in their raw shape.
type errorPayload struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorPayload{Message: message, Kind: kind})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrLocationNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Location not found")
	case errors.Is(err, model.ErrReviewNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Review not found")
	case errors.Is(err, model.ErrIdentityNotFound):
		writeError(w, http.StatusBadRequest, "identity", "Could not resolve the review author")
	case errors.Is(err, model.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err.Error())
	default:
		log.Println("Internal error: ", err)
		writeError(w, http.StatusInternalServerError, "internal", "Internal server error")
	}
}
