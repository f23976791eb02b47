package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

type Config struct {
	Server       ServerConfig
	Log          LogConfig
	Metrics      MetricsConfig
	Notification NotificationConfig
	Kafka        KafkaConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Environment     string        `env:"GO_ENV" envDefault:"development"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type MetricsConfig struct {
	Addr string `env:"METRICS_ADDR" envDefault:":9090"`
}

// NotificationConfig holds the fixed envelope of every order notification.
type NotificationConfig struct {
	To            string `env:"NOTIFY_TO" envDefault:"info@kagit.online"`
	From          string `env:"NOTIFY_FROM" envDefault:"noreply@kagit.online"`
	SubjectPrefix string `env:"NOTIFY_SUBJECT_PREFIX" envDefault:"Yeni Sipariş - "`
}

// KafkaConfig controls the optional order notification event stream.
type KafkaConfig struct {
	Enabled      bool          `env:"KAFKA_ENABLED" envDefault:"false"`
	Broker       string        `env:"KAFKA_BROKER" envDefault:"localhost:9092"`
	Topic        string        `env:"KAFKA_TOPIC" envDefault:"order-notifications"`
	RetryMax     int           `env:"KAFKA_RETRY_MAX" envDefault:"5"`
	RetryBackoff time.Duration `env:"KAFKA_RETRY_BACKOFF" envDefault:"500ms"`
}

// DefaultNotification returns the envelope used when nothing is overridden.
func DefaultNotification() NotificationConfig {
	return NotificationConfig{
		To:            "info@kagit.online",
		From:          "noreply@kagit.online",
		SubjectPrefix: "Yeni Sipariş - ",
	}
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
