package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RigelNana/arksignup/frontend/config"
	"github.com/RigelNana/arksignup/frontend/handler"
	"github.com/RigelNana/arksignup/frontend/router"
	"github.com/RigelNana/arksignup/pkg/logging"
	"github.com/RigelNana/arksignup/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.New("frontend", cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	// 启动 Prometheus metrics 服务器
	metricsServer := metrics.StartMetricsServer(cfg.MetricsPort)
	logger.Infof("Prometheus metrics server started on :%s", cfg.MetricsPort)

	backend := handler.NewBackendClient(cfg.BackendURL, cfg.BackendTimeout)
	logger.Infof("Backend submit URL: %s", cfg.BackendURL)

	r, err := router.Setup(handler.NewPageHandler(logger), handler.NewSubmitHandler(backend, logger), logger)
	if err != nil {
		logger.Fatalf("router setup failed: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("Frontend listening on %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("frontend failed: %v", err)
		}
	}()

	// 等待中断信号
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("Frontend正在关闭...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Warn("http shutdown failed")
	}
	_ = metricsServer.Shutdown(ctx)
}
