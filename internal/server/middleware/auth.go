// Package middleware содержит HTTP middleware сервера синхронизации.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Junior620/cocoatrack-sub003/internal/server/handlers"
	"github.com/Junior620/cocoatrack-sub003/pkg/api"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Ответ 401 для клиента означает истекшую сессию и переводит его
// в режим read_only_auth, поэтому он никогда не используется для
// транзиентных ошибок сервера.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "path", r.URL.Path)
				sendUnauthorized(w, logger, "missing token")
				return
			}

			// Ожидаем формат "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format")
				sendUnauthorized(w, logger, "invalid token format")
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, parts[1])
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				sendUnauthorized(w, logger, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, handlers.UsernameKey, claims.Username)

			logger.Debug("User authenticated", "user_id", claims.UserID, "username", claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sendUnauthorized(w http.ResponseWriter, logger *slog.Logger, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(api.ErrorResponse{Message: "unauthorized: " + message}); err != nil {
		logger.Error("failed to encode unauthorized response", "error", err)
	}
}
