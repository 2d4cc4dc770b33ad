package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/lodgings-api/internal/auth"
)

// TokenVerifier validates a bearer token and returns the user ID it was
// issued for. *auth.Issuer satisfies it.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// InvalidTokenMessage is the 401 message for any rejected bearer token.
const InvalidTokenMessage = "Invalid authentication token provided."

// RequireAuth returns a middleware that only lets requests through when they
// carry "Authorization: Bearer <token>" with a token v accepts. The scheme is
// matched case-insensitively. The user ID is
// stored in the request context, retrievable with auth.UserIDFromContext.
// Every failure responds 401 with the same message.
func RequireAuth(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, token, _ := strings.Cut(r.Header.Get("Authorization"), " ")
			if !strings.EqualFold(scheme, "Bearer") || token == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", InvalidTokenMessage)
				return
			}
			userID, err := v.Verify(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", InvalidTokenMessage)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// writeError writes the API's standard error envelope. It mirrors the
// handler package's encoding so middleware rejections look the same.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
