package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eks-go-app/api/handlers"
	"eks-go-app/internal/buildinfo"
	"eks-go-app/internal/config"
	"eks-go-app/internal/exposition"
	"eks-go-app/internal/logger"
	"eks-go-app/internal/otelutils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const serviceName = "eks-go-app"

var (
	otelInit       = otelutils.InitOTel
	logFatal       = logger.Fatal
	serverShutdown = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

func init() {
	godotenv.Load()
}

// @title EKS Go App
// @version 0.1.0
// @description Smoke-test service for containerised deployments
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		logFatal("invalid configuration", "error", err)
		return
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warn("falling back to info logging", "error", err)
	}
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting EKS Go App", "port", cfg.Port)
	logger.Info("Environment", "environment", cfg.Environment)

	telemetry, err := otelInit(otelutils.OTelConfig{
		ServiceName:    serviceName,
		ServiceVersion: buildinfo.Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})
	if err != nil {
		logger.Warn("OpenTelemetry unavailable, continuing without telemetry", "error", err)
		telemetry = nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handlers.NewRouter(cfg, exposition.MustRender(), telemetry),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logFatal("server failed", "addr", srv.Addr, "error", err)
			stop()
		}
	}()

	logger.Info("Server starting", "addr", srv.Addr)

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := serverShutdown(srv, shutdownCtx); err != nil {
		logFatal("server shutdown failed", "error", err)
	}

	otelutils.Shutdown(shutdownCtx)

	logger.Info("server stopped")
}
