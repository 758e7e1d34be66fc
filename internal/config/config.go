// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	RabbitMQ                `yaml:"rabbitmq"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	RateLimit               `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP    string        `yaml:"addresshttp" env-default:"localhost:3001"`
	TimeoutHTTP    time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes" env-default:"1000000"`
	StorageTimeout time.Duration `yaml:"storage_timeout" env-default:"5s"`
}

// RabbitMQ структура для настройки подключения к брокеру уведомлений
type RabbitMQ struct {
	ConnectionString string        `yaml:"connection_string" env:"RABBITMQ_CONNECTION_STRING"`
	Retries          int           `yaml:"retries" env-default:"5"`
	RetryDelay       time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// JWTToken структура для работы с jwt-токеном.
// Секретный ключ не имеет значения по умолчанию и обязан приходить из окружения.
type JWTToken struct {
	JWTSecretKey string        `yaml:"-" env:"JWT_SECRET_KEY" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"1h"`
}

// RateLimit структура для настройки ограничителя частоты запросов на /login
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"5"`
	Burst int     `yaml:"burst" env-default:"10"`
}

// MustLoad функция для загрузки конфига, завершает процесс при любой ошибке
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
