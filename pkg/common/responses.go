package common

import (
	"encoding/json"
	"net/http"
)

// DefaultMaxBodyBytes caps request bodies.
const DefaultMaxBodyBytes = 1 << 20

// MessageResponse is the body of operations that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// RespondMessage sends {"message": message}
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, MessageResponse{Message: message})
}

// ParseJSONBody parses JSON request body with size limit
func ParseJSONBody(w http.ResponseWriter, r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
