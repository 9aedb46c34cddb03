package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/cmd"
	grpcin "fooddelivery/internal/adapters/in/grpc"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/in/http/openapi"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.L().Fatal("application stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg cmd.Config) error {
	l := logger.L()

	sqlDB, gormDB, err := postgres.Connect(ctx, cfg.DSN())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	publisher, closePublisher, err := newPublisher(cfg, l)
	if err != nil {
		return err
	}
	defer closePublisher()

	app := cmd.NewCompositionRoot(cfg, sqlDB, gormDB, publisher)

	doc, err := openapi.Load(ctx)
	if err != nil {
		return err
	}
	if err := openapi.RegisterSwagger(doc); err != nil {
		return err
	}
	validator, err := openapi.RequestValidator(doc)
	if err != nil {
		return err
	}

	e := httpin.NewEcho(app.CreateHTTPServer(), httpin.Options{
		Logger:         l,
		JWTSecret:      cfg.JWTSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Validator:      validator,
	})
	e.Logger.SetLevel(echoLogLevel(cfg.AppEnv))

	healthServer := grpcin.NewHealthServer()
	jobManager := app.CreateJobManager(healthServer, l)
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%s", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	errCh := make(chan error, 2)
	go func() {
		l.Info("grpc health server listening", zap.String("port", cfg.GRPCPort))
		errCh <- healthServer.Serve(lis)
	}()
	go func() {
		l.Info("http server listening", zap.String("port", cfg.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		l.Info("shutting down")
	case err = <-errCh:
		if err != nil {
			l.Error("server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		l.Warn("http shutdown", zap.Error(shutdownErr))
	}
	healthServer.Stop(shutdownCtx)
	return err
}

func newPublisher(cfg cmd.Config, l *zap.Logger) (ports.OrderEventPublisher, func(), error) {
	if len(cfg.KafkaBrokers) == 0 {
		l.Info("no kafka brokers configured, order events are logged only")
		return kafka.NewLogPublisher(l), func() {}, nil
	}

	producer, err := kafka.NewSyncProducer(cfg.KafkaBrokers)
	if err != nil {
		return nil, nil, err
	}
	publisher, err := kafka.NewOrderEventPublisher(producer, cfg.KafkaOrderChangedTopic)
	if err != nil {
		_ = producer.Close()
		return nil, nil, err
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			l.Warn("kafka producer close", zap.Error(err))
		}
	}, nil
}

func echoLogLevel(env string) log.Lvl {
	if env == "production" {
		return log.WARN
	}
	return log.DEBUG
}
