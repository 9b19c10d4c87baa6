// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CultureMesh

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to w with the given status
// code and an "application/json" Content-Type. Every JSON body produced by
// the accounts API (registration results, profiles, issued tokens, user
// listings) goes through this helper.
//
// If marshaling fails the response degrades to a plain 500 and the wrapped
// marshal error is returned; the caller's status code is never written in
// that case. Returns the number of body bytes written.
//
// Example usage:
//
//	utils.WriteJSON(w, models.ProfileResponse{Username: "alice"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error serializing response to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error serializing response to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
