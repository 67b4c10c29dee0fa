package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response. Results and stats change as matches are
// recorded, so responses are never cached.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Created writes a 201 with the recorded resource
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}
