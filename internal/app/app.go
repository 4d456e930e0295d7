package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/lostfound-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lostfound-backend/internal/auth"
	"github.com/heartmarshall/lostfound-backend/internal/config"
	"github.com/heartmarshall/lostfound-backend/internal/transport/middleware"
	"github.com/heartmarshall/lostfound-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, wires services and serves HTTP until ctx is cancelled, then
// shuts down gracefully and drains pending notifications.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := NewServices(logger, cfg, pool)
	svc.Notifier.Start(ctx)
	defer svc.Notifier.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(logger, cfg, svc, rest.PingCheck("database", pool)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// newHandler assembles routes and the middleware chain:
// Recovery, RequestID, Logger, CORS, Auth.
func newHandler(logger *slog.Logger, cfg *config.Config, svc *Services, checks ...rest.Check) http.Handler {
	checks = append(checks, rest.Check{
		Name: "settings",
		Probe: func(ctx context.Context) error {
			_, err := svc.Settings.GetConfig(ctx)
			return err
		},
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(logger)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), checks...),
		Match:  rest.NewMatchHandler(svc.Match, logger),
		Claim:  rest.NewClaimHandler(svc.Claim, logger),
		Config: rest.NewConfigHandler(svc.Settings, logger),
	}, limiter.Limit("claims", cfg.RateLimit.ClaimsPerMinute))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager, logger),
	)(router)
}
