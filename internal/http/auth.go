package httpapi

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

// RequireAPIKey gates a handler behind the shared X-API-Key secret.
// An unconfigured secret is a server fault (500); a missing or wrong key
// is 403. The comparison is constant-time.
func RequireAPIKey(apiKey string, logger *zap.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if apiKey == "" {
			logger.Error("API key not configured")
			writeError(w, http.StatusInternalServerError, "API key not configured")
			return
		}
		provided := r.Header.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			writeError(w, http.StatusForbidden, "Invalid or missing API key")
			return
		}
		next(w, r)
	}
}
