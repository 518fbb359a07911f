package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/MEDWEDU/Lettera/internal/config"
	httpx "github.com/MEDWEDU/Lettera/internal/http"
	"github.com/MEDWEDU/Lettera/internal/http/handlers"
	"github.com/MEDWEDU/Lettera/internal/http/middleware"
)

// Run wires the container, builds the router and serves until interrupted.
func Run(cfg *config.Config) error {
	logger := newLogger(cfg)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := NewContainer(ctx, cfg, logger)
	cancel()
	if err != nil {
		return err
	}

	h := httpx.Handlers{
		Auth:     handlers.NewAuthHandlers(container.AuthSvc),
		User:     handlers.NewUserHandlers(container.AuthSvc, container.SearchSvc),
		Chat:     handlers.NewChatHandlers(container.ChatSvc),
		Media:    handlers.NewMediaHandlers(container.MediaSvc),
		Presence: handlers.NewPresenceHandlers(container.PresenceSvc),
	}
	authMW := middleware.NewAuthMW(container.AuthSvc)

	healthChecks := map[string]httpx.HealthChecker{
		"mongo": func() error {
			checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return container.Mongo.HealthCheck(checkCtx)
		},
		"redis": func() error {
			checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return container.Redis.HealthCheck(checkCtx)
		},
	}

	r := httpx.BuildRouter(h, authMW, logger, healthChecks)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	return container.Close(shutdownCtx)
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "lettera").Logger()
	if cfg.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger
}
