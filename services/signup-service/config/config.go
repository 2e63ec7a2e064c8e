package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrMissingMongoURI = errors.New("MongoDB URI not found in environment variables")
	ErrMissingDSN      = errors.New("DATABASE_DSN is required for sql store drivers")
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	GRPCPort    string `mapstructure:"grpc_port"`
	MetricsPort string `mapstructure:"metrics_port"`
}

type StoreConfig struct {
	Driver     string `mapstructure:"driver"`
	MongoURI   string `mapstructure:"mongo_uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
	DSN        string `mapstructure:"dsn"`
}

type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using system env")
	}

	v := viper.New()

	// 设置默认值
	v.SetDefault("server.port", "5001")
	v.SetDefault("server.grpc_port", "50061")
	v.SetDefault("server.metrics_port", "2113")
	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("store.database", "KjoCluster1")
	v.SetDefault("store.collection", "signups")
	v.SetDefault("kafka.topic", "signup.created")
	v.SetDefault("log.level", "info")

	// 绑定环境变量; mongo_uri is the name the .env files were written with
	_ = v.BindEnv("server.port", "BACKEND_PORT")
	_ = v.BindEnv("server.grpc_port", "GRPC_PORT")
	_ = v.BindEnv("server.metrics_port", "METRICS_PORT")
	_ = v.BindEnv("store.driver", "STORE_DRIVER")
	_ = v.BindEnv("store.mongo_uri", "MONGO_URI", "mongo_uri")
	_ = v.BindEnv("store.database", "MONGO_DATABASE")
	_ = v.BindEnv("store.collection", "MONGO_COLLECTION")
	_ = v.BindEnv("store.dsn", "DATABASE_DSN")
	_ = v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	_ = v.BindEnv("kafka.topic", "KAFKA_TOPIC")
	_ = v.BindEnv("log.level", "LOG_LEVEL")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo:
		if c.Store.MongoURI == "" {
			return ErrMissingMongoURI
		}
	case DriverPostgres, DriverSQLite:
		if c.Store.DSN == "" {
			return ErrMissingDSN
		}
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	return nil
}

// BrokerList splits the comma separated broker list.
func (k KafkaConfig) BrokerList() []string {
	var out []string
	for _, p := range strings.Split(k.Brokers, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
