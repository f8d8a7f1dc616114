package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/docs"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/auth"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/configuration"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/core/values"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/logging"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/ui/rest/handlers"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/ui/rest/router"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/pkg/monitoring"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Config *configuration.AppConfig
	Logger *zap.Logger
	Router *gin.Engine
}

func InitBootstrap() Bootstrap {
	if configuration.Config == nil {
		log.Fatal("configuration is nil")
	}
	app, err := initBootstrap(configuration.Config)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	return app
}

// initBootstrap validates the configuration, builds the logger and authorizer, and configures the router.
func initBootstrap(cfg *configuration.AppConfig) (Bootstrap, error) {
	if err := cfg.Validate(); err != nil {
		return Bootstrap{}, err
	}

	logger, err := logging.New(cfg.LogConfig)
	if err != nil {
		return Bootstrap{}, err
	}

	authorizer, err := auth.FromConfig(cfg.AuthConfig)
	if err != nil {
		return Bootstrap{}, fmt.Errorf("authorizer: %w", err)
	}
	if cfg.AuthConfig.Mode == auth.ModeNone {
		logger.Warn("authorization disabled, values API is open", zap.String("mode", cfg.AuthConfig.Mode))
	}

	if cfg.AppVersion != "" {
		docs.SwaggerInfo.Version = cfg.AppVersion
	}

	r := router.CreateRouter(router.Dependencies{
		Logger:     logger,
		Checks:     monitoring.New(cfg),
		Values:     handlers.NewValues(values.New()),
		Authorizer: authorizer,
	}, router.Options{
		TrustedProxies: cfg.RestConfig.TrustedProxies,
		CORSOrigins:    cfg.RestConfig.CORSOrigins,
	})

	return Bootstrap{Config: cfg, Logger: logger, Router: r}, nil
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (b Bootstrap) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", b.addr())
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return b.Serve(ctx, ln)
}

// Serve runs the HTTP server on ln until ctx is cancelled.
func (b Bootstrap) Serve(ctx context.Context, ln net.Listener) error {
	defer b.Logger.Sync() //nolint:errcheck

	srv := &http.Server{
		Handler:      b.Router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		b.Logger.Info("server listening",
			zap.String("name", b.Config.AppName),
			zap.String("version", b.Config.AppVersion),
			zap.String("revision", b.Config.AppRevision),
			zap.String("addr", ln.Addr().String()),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	b.Logger.Info("shutting down server")
	timeout := b.Config.RestConfig.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	b.Logger.Info("server exiting")
	return nil
}

func (b Bootstrap) addr() string {
	return net.JoinHostPort(b.Config.RestConfig.Host, strconv.Itoa(b.Config.RestConfig.Port))
}
