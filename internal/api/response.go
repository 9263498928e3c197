package api

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// writeError answers with a JSON error body and returns err for the
// logging wrapper.
func writeError(w http.ResponseWriter, status int, message string, err error) error {
	_ = writeJSON(w, status, errorResponse{Error: message})
	return err
}
