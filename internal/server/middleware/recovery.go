package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Junior620/cocoatrack-sub003/pkg/api"
)

// RecoveryMiddleware перехватывает panic в обработчиках, логирует стек
// и возвращает 500 без деталей. Retryable выставлен, чтобы клиент
// классифицировал сбой как транзиентный и повторил операцию.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						"error", err,
						"method", r.Method,
						"path", r.URL.Path,
						"remote_addr", r.RemoteAddr,
						"stack", string(debug.Stack()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					resp := api.ErrorResponse{Message: "internal server error", Retryable: true}
					if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
						logger.Error("failed to encode recovery response", "error", encErr)
					}
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
