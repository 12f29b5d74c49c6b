package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"movie-catalog/pkg/identity"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// APIKey guards the whole API surface with a static key. Used in
// deployments where the backend sits behind a trusted frontend.
func APIKey(apiKey string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing API key")
				return
			}

			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				logger.Warn("Rejected request with invalid API key",
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Auth validates the bearer token against the identity provider and
// attaches the verified identity to the request context. Fails closed.
func Auth(client *identity.Client, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			ident, err := client.VerifyToken(r.Context(), parts[1])
			if err != nil {
				if errors.Is(err, identity.ErrInvalidToken) {
					logger.Warn("Invalid bearer token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Invalid token")
					return
				}
				logger.Error("Failed to verify token", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), ident.ID, ident.Email, ident.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
