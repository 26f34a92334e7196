package middleware

import (
	"errors"
	"net/http"
	"strings"

	"cinema-rooms/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// RequireJWT guards a route group with HS256 bearer-token authentication.
// Routes outside the group stay public; the wiring decides which is which.
func RequireJWT(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token.")
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>.")
				return
			}

			if _, err := utils.VerifyJWT(secret, parts[1]); err != nil {
				logger.Warn("Rejected bearer token",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)
				if errors.Is(err, jwt.ErrTokenExpired) {
					utils.ResponseUnauthorized(w, "Token has expired.")
					return
				}
				utils.ResponseUnauthorized(w, "Invalid token.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
