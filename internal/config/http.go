package config

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response with the given status code. A nil v
// renders as a `null` body, never as an empty one, so clients can decode
// every 200 response.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger.WithError(err).Error("Failed to encode JSON response")
	}
}

// Error writes a JSON error body, keeping the shape uniform across handlers.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
