package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/validate"
)

// Envelope is the shape of every API response body.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{Success: true, Data: data, Message: message})
}

func respondError(w http.ResponseWriter, status int, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{Success: false, Error: errMsg})
}

// handleError logs the failure and writes the matching envelope. Validation
// failures surface their aggregated message as a 400, a missing post is the
// one mapped 404; everything else is a generic 500 so internals never leak.
func handleError(w http.ResponseWriter, op string, err error) {
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		log.Printf("ERROR [%s] validation failed: %v", op, err)
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}
	if errors.Is(err, domain.ErrPostNotFound) {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	log.Printf("ERROR [%s]: %v", op, err)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Printf("ERROR [handlers.decodeBody]: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
