package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"skillswap_server/services"
)

// UserIDHeader carries the authenticated user id. The upstream gateway
// verifies credentials and sets this header; the core trusts it.
const UserIDHeader = "X-User-Id"

// requireUser extracts the authenticated user id, writing a 401 when the
// identity provider did not supply one.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get(UserIDHeader)
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Missing user identity"})
		return "", false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps the service error taxonomy onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	case errors.Is(err, services.ErrAlreadyRequested):
		writeJSON(w, http.StatusConflict, map[string]string{"message": err.Error()})
	case errors.Is(err, services.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, services.ErrStoreUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"message": "Store unavailable, retry later"})
	default:
		log.Printf("❌ Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
	}
}
