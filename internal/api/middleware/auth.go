package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
)

const apiKeyHeader = "x-api-key"

// APIKey gates a route group behind the shared admin key. The 401 body is
// identical whether the header is missing or wrong. An empty configured key
// rejects everything; the server owner has to opt in to admin writes.
func APIKey(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" {
				log.Printf("ERROR [middleware.APIKey] no admin key configured, rejecting request")
				unauthorized(w)
				return
			}

			provided := r.Header.Get(apiKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
				log.Printf("ERROR [middleware.APIKey] invalid or missing api key")
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Authenticated reports whether the request carries the admin key. Used by
// the dashboard, which answers 200 either way.
func Authenticated(r *http.Request, adminKey string) bool {
	if adminKey == "" {
		return false
	}
	provided := r.Header.Get(apiKeyHeader)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) == 1
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "Unauthorized",
	})
}
