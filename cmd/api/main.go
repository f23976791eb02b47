package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/IBM/sarama"
	"github.com/joho/godotenv"

	"github.com/kagit-online/order-notification/internal/api"
	"github.com/kagit-online/order-notification/internal/config"
	"github.com/kagit-online/order-notification/internal/metrics"
	"github.com/kagit-online/order-notification/internal/notify"
	"github.com/kagit-online/order-notification/pkg/kafka"
	"github.com/kagit-online/order-notification/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found; relying on environment variables")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		slog.Error("Failed to create logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	// Notifications are always logged; the Kafka event stream is opt-in.
	reporters := notify.MultiReporter{notify.NewLogReporter(log)}
	if cfg.Kafka.Enabled {
		var producer sarama.SyncProducer
		producer, err = kafka.NewProducer(cfg.Kafka.Broker, cfg.Kafka.RetryMax, cfg.Kafka.RetryBackoff)
		if err != nil {
			log.Error("Failed to create Kafka producer", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		log.Info("✅ Connected to Kafka", "topic", cfg.Kafka.Topic)
		reporters = append(reporters, notify.NewKafkaReporter(producer, cfg.Kafka.Topic, log))
	}

	// Monitoring listener
	metricsApp := metrics.NewApp()
	go func() {
		if err := metricsApp.Listen(cfg.Metrics.Addr); err != nil {
			log.Error("Metrics server error", "error", err)
		}
	}()

	// Create and start server
	server := api.NewServer(cfg, log, reporters)
	go func() {
		log.Info("🚀 Order notification server starting", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			log.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("🛑 Server shutting down...", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", "error", err)
	}
	if err := metricsApp.ShutdownWithContext(ctx); err != nil {
		log.Error("Metrics server shutdown error", "error", err)
	}
}
