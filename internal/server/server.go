package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"finance-tracker/internal/config"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// Run serves e until ctx is cancelled, then drains in-flight requests and
// pending alert deliveries within the configured shutdown timeout.
func Run(
	ctx context.Context,
	cfg *config.ServerConfig,
	e *echo.Echo,
	limiter *middleware.IPRateLimiter,
	notifier services.NotificationServiceInterface,
	logger *slog.Logger,
) error {
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", slog.String("address", cfg.Address()))
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		limiter.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := notifier.WaitForDeliveries(shutdownCtx); err != nil {
			logger.Warn("pending alert deliveries abandoned", slog.String("error", err.Error()))
		}
		return nil
	})

	return g.Wait()
}
