package app

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/api/http"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/api/http/controllers/payment"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/infrastructure/kafka"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/pkg/logger"
	paymentUsecase "github.com/sxidsvit/microservices-kafka-cluster/internal/usecase/payment"
)

const (
	AppName         = "PAYMENT"
	ProvisionerName = "TOPICS"

	serviceClientID     = "payment-service"
	provisionerClientID = "kafka-service"
)

// Config — конфиг сервиса оплаты. Заполняется через envconfig с префиксом PAYMENT.
type Config struct {
	Log      logger.Config          `envconfig:"LOG"`
	Server   http.ServerConfig      `envconfig:"SERVER"`
	Kafka    kafka.Config           `envconfig:"KAFKA"`
	Payment  paymentUsecase.Config  `envconfig:"PAYMENT"`
	Identity payment.IdentityConfig `envconfig:"IDENTITY"`
}

// ProvisionerConfig — конфиг создания топиков. Префикс TOPICS: TOPICS_KAFKA_BROKERS, TOPICS_MANIFEST.
type ProvisionerConfig struct {
	Log      logger.Config `envconfig:"LOG"`
	Kafka    kafka.Config  `envconfig:"KAFKA"`
	Manifest string        `envconfig:"MANIFEST"` // путь к YAML; пусто — встроенный манифест
}

// loadEnv подтягивает .env (путь из ENV_FILE). Отсутствие файла не ошибка.
func loadEnv() {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		slog.Debug("config: .env не найден, используем окружение", "path", path, "error", err)
	}
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	loadEnv()

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Kafka.ClientID == "" {
		cfg.Kafka.ClientID = serviceClientID
	}
	return cfg, nil
}

// LoadProvisionerCfg — то же для утилиты создания топиков.
func LoadProvisionerCfg() (ProvisionerConfig, error) {
	loadEnv()

	var cfg ProvisionerConfig
	if err := envconfig.Process(ProvisionerName, &cfg); err != nil {
		return ProvisionerConfig{}, err
	}
	if cfg.Kafka.ClientID == "" {
		cfg.Kafka.ClientID = provisionerClientID
	}
	return cfg, nil
}
