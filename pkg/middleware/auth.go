package middleware

import (
	"net/http"
	"strings"

	"marine-booking/pkg/auth"
	"marine-booking/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer token through the external token verifier and
// puts the verified identity on the request context.
func Auth(verifier auth.Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := verifyRequest(w, r, verifier, logger)
			if !ok {
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Moderator gates review moderation endpoints to moderator-authorized
// callers.
func Moderator(verifier auth.Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := verifyRequest(w, r, verifier, logger)
			if !ok {
				return
			}

			if claims.Role != "moderator" && claims.Role != "admin" {
				logger.Warn("Moderator check: unauthorized access attempt",
					zap.String("user_id", claims.UserID),
					zap.String("role", claims.Role),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Moderator access required")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyRequest(w http.ResponseWriter, r *http.Request, verifier auth.Verifier, logger *zap.Logger) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		utils.ResponseUnauthorized(w, "Missing authorization token")
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
		return nil, false
	}

	claims, err := verifier.Verify(parts[1])
	if err != nil {
		logger.Warn("Token verification failed",
			zap.Error(err),
			zap.String("path", r.URL.Path),
		)
		utils.ResponseUnauthorized(w, "Invalid or expired token")
		return nil, false
	}

	return claims, true
}
