package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError emits the same {"error": ...} envelope the rest handlers use,
// so a middleware rejection is indistinguishable from a handler error on
// the wire.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
