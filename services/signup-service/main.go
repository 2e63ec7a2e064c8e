package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RigelNana/arksignup/pkg/logging"
	"github.com/RigelNana/arksignup/pkg/metrics"
	grpcMetrics "github.com/RigelNana/arksignup/pkg/metrics/grpc"
	"github.com/RigelNana/arksignup/services/signup-service/config"
	"github.com/RigelNana/arksignup/services/signup-service/database"
	"github.com/RigelNana/arksignup/services/signup-service/events"
	"github.com/RigelNana/arksignup/services/signup-service/handler"
	grpcHandler "github.com/RigelNana/arksignup/services/signup-service/handler/grpc"
	"github.com/RigelNana/arksignup/services/signup-service/router"
	"github.com/RigelNana/arksignup/services/signup-service/service"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
)

const (
	serviceName = "signup-service"
	// 存储健康检查间隔
	healthInterval = 15 * time.Second
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.New(serviceName, "info").Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logging.New(serviceName, cfg.Log.Level)
	gin.SetMode(gin.ReleaseMode)

	// 启动 Prometheus metrics 服务器
	metricsServer := metrics.StartMetricsServer(cfg.Server.MetricsPort)
	logger.Infof("Prometheus metrics server started on :%s", cfg.Server.MetricsPort)

	ctx := context.Background()

	// 初始化存储
	repo, err := database.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatalf("初始化存储失败: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.Close(closeCtx); err != nil {
			logger.WithError(err).Warn("store close failed")
		}
	}()

	// Send a ping to confirm a successful connection; keep serving either way
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	pingErr := repo.Ping(pingCtx)
	cancel()
	if pingErr != nil {
		logger.WithError(pingErr).Error("store ping failed")
	} else {
		logger.WithField("driver", repo.Driver()).Info("store ping succeeded")
	}

	var publisher events.Publisher = events.NopPublisher{}
	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		publisher = events.NewKafkaPublisher(brokers, cfg.Kafka.Topic, logger)
		logger.Infof("Kafka publisher enabled: topic=%s", cfg.Kafka.Topic)
	} else {
		logger.Info("Kafka publisher disabled (no brokers)")
	}
	defer publisher.Close()

	signupService := service.NewSignupService(repo, publisher, logger)
	defer signupService.Wait()
	signupHandler := handler.NewSignupHandler(signupService, logger)
	r := router.Setup(signupHandler, logger)

	// 启动gRPC健康检查服务器
	grpcServer := grpc.NewServer(grpcMetrics.ServerOptions(serviceName)...)
	health := grpcHandler.Register(grpcServer)
	health.Report(pingErr)
	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go health.Watch(watchCtx, healthInterval, repo.Ping)

	lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCPort)
	if err != nil {
		logger.Fatalf("gRPC监听失败: %v", err)
	}
	go func() {
		logger.Infof("gRPC health server listening on %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Errorf("gRPC server stopped: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("Signup service listening on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server failed: %v", err)
		}
	}()

	// 等待中断信号
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("Signup服务正在关闭...")
	stopWatch()
	health.Shutdown()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("http shutdown failed")
	}
	_ = metricsServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
