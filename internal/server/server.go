// Package server собирает HTTP сервер синхронизации: маршруты,
// middleware и graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Junior620/cocoatrack-sub003/internal/config"
	"github.com/Junior620/cocoatrack-sub003/internal/server/handlers"
	"github.com/Junior620/cocoatrack-sub003/internal/server/middleware"
	"github.com/Junior620/cocoatrack-sub003/internal/server/storage"
)

const shutdownTimeout = 10 * time.Second

// Server инкапсулирует http.Server вместе с зависимостями обработчиков.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New создает сервер с настроенными маршрутами и middleware.
func New(
	cfg config.ServerConfig,
	logger *slog.Logger,
	users storage.UserStorage,
	records storage.RecordStorage,
	version string,
) *Server {
	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.TokenTTL.Std(),
	}

	authHandler := handlers.NewAuthHandler(logger, users, jwtConfig)
	syncHandler := handlers.NewSyncHandler(logger, records)
	healthHandler := handlers.NewHealthHandler(logger, version)

	mux := http.NewServeMux()

	// Публичные маршруты
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", authHandler.GetSalt)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	// Маршруты синхронизации требуют валидный access token
	sync := http.NewServeMux()
	sync.HandleFunc("POST /api/v1/sync/operations", syncHandler.PushOperation)
	sync.HandleFunc("GET /api/v1/sync/changes/{table}", syncHandler.GetChanges)
	mux.Handle("/api/v1/sync/", middleware.AuthMiddleware(logger, jwtConfig)(sync))

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(cfg.RateLimitRPS, logger)(handler)
	handler = middleware.LoggingMiddleware(logger, "/api/v1/health")(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		logger: logger,
	}
}

// Handler возвращает корневой обработчик сервера. Используется в тестах
// для прогона запросов без открытия порта.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run запускает сервер и блокируется до отмены контекста или ошибки
// листенера. При отмене контекста выполняется graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	errC := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
