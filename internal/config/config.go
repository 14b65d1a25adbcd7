package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Источники описаний парка
const (
	FleetSourceDefault  = "default"
	FleetSourceFile     = "file"
	FleetSourcePostgres = "postgres"
)

// AppConfig содержит конфигурацию приложения
type AppConfig struct {
	ServerPort string
	GinMode    string
	Simulation SimulationConfig
	Fleet      FleetConfig
	Kafka      KafkaConfig
	Mqtt       MqttConfig
	Database   DatabaseConfig
	Logging    LoggerConfig
}

// SimulationConfig содержит параметры тикера
type SimulationConfig struct {
	TickInterval time.Duration
	Seed         int64 // 0 - засев от времени
}

// FleetConfig определяет, откуда берется состав парка
type FleetConfig struct {
	Source string // default | file | postgres
	File   string
}

type KafkaConfig struct {
	Enable bool
	Broker string
	Topic  string
}

type MqttConfig struct {
	Enable      bool
	Broker      string
	TopicPrefix string
	ClientID    string
}

// LoggerConfig содержит настройки логгера
type LoggerConfig struct {
	Enable     bool
	LogsDir    string
	Level      string
	SavingDays int
}

// DatabaseConfig содержит конфигурацию для подключения к базе данных
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// LoadConfiguration загружает конфигурацию из .env файла или переменных окружения
func LoadConfiguration() (*AppConfig, error) {
	_ = godotenv.Load()

	config := &AppConfig{
		ServerPort: getEnv("APP_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		Simulation: SimulationConfig{
			TickInterval: time.Duration(getEnvAsInt("TICK_INTERVAL_MS", 1000)) * time.Millisecond,
			Seed:         int64(getEnvAsInt("SIM_SEED", 0)),
		},
		Fleet: FleetConfig{
			Source: getEnv("FLEET_SOURCE", FleetSourceDefault),
			File:   getEnv("FLEET_FILE", "./fleet.yaml"),
		},
		Kafka: KafkaConfig{
			Enable: getEnvAsBool("KAFKA_ENABLE", false),
			Broker: getEnv("KAFKA_BROKER", "localhost:9092"),
			Topic:  getEnv("KAFKA_TOPIC", "cnc_telemetry"),
		},
		Mqtt: MqttConfig{
			Enable:      getEnvAsBool("MQTT_ENABLE", false),
			Broker:      getEnv("MQTT_BROKER", "tcp://localhost:1883"),
			TopicPrefix: getEnv("MQTT_TOPIC_PREFIX", "cnc"),
			ClientID:    getEnv("MQTT_CLIENT_ID", "cnc-simulator"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Username: getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "root"),
			DBName:   getEnv("DB_NAME", "cnc_fleet"),
		},
		Logging: LoggerConfig{
			Enable:     getEnvAsBool("LOGGER_ENABLE", true),
			LogsDir:    getEnv("LOGGER_LOGS_DIR", "./logs"),
			Level:      getEnv("LOGGER_LOG_LEVEL", "INFO"),
			SavingDays: getEnvAsInt("LOGGER_SAVING_DAYS", 7),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *AppConfig) validate() error {
	if c.Simulation.TickInterval <= 0 {
		return fmt.Errorf("TICK_INTERVAL_MS должен быть больше нуля, получено %v", c.Simulation.TickInterval)
	}
	switch c.Fleet.Source {
	case FleetSourceDefault, FleetSourceFile, FleetSourcePostgres:
	default:
		return fmt.Errorf("неизвестный FLEET_SOURCE %q", c.Fleet.Source)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	val, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return val
}
