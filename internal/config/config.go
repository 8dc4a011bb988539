// Package config предоставляет структуры и функции для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Поддерживаемые драйверы хранилища.
const (
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string          `yaml:"env" env:"ENV" env-default:"local"`
	Storage         Storage         `yaml:"storage"`
	RedisConnection RedisConnection `yaml:"redis_connection"`
	CacheTTL        time.Duration   `yaml:"cache_ttl" env:"CACHE_TTL" env-default:"5s"`
	HTTPServer      HTTPServer      `yaml:"http_server"`
	RateLimit       RateLimit       `yaml:"rate_limit"`
}

// Storage структура для настройки подключения к хранилищу
type Storage struct {
	Driver           string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
	ConnectionString string        `yaml:"connection_string" env:"STORAGE_CONNECTION_STRING" env-required:"true"`
	Database         string        `yaml:"database" env:"STORAGE_DATABASE" env-default:"tutoring"`
	MaxOpenConns     int           `yaml:"max_open_conns" env-default:"25"`
	MaxIdleConns     int           `yaml:"max_idle_conns" env-default:"25"`
	ConnMaxLifetime  time.Duration `yaml:"conn_max_lifetime" env-default:"5m"`
	ConnectTimeout   time.Duration `yaml:"connect_timeout" env-default:"10s"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кеш.
type RedisConnection struct {
	Address     string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	Timeout     time.Duration `yaml:"timeout"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":3000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RateLimit параметры ограничителя запросов (token bucket)
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"50"`
	Burst int     `yaml:"burst" env-default:"100"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс при любой ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает YAML-файл по указанному пути и переменные окружения.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	switch cfg.Storage.Driver {
	case DriverPostgres, DriverMongoDB:
	default:
		return nil, fmt.Errorf("%s: unknown storage driver %q", op, cfg.Storage.Driver)
	}
	return &cfg, nil
}
