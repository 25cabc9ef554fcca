package payment

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/ports"
)

// Config — настройки обработки оплаты. Переменные: PAYMENT_PAYMENT_RESPONSE_DELAY, PAYMENT_PAYMENT_PUBLISH_TIMEOUT.
type Config struct {
	// ResponseDelay — искусственная задержка ответа после публикации (имитация обработки платежа).
	ResponseDelay  time.Duration `envconfig:"RESPONSE_DELAY" default:"3s"`
	PublishTimeout time.Duration `envconfig:"PUBLISH_TIMEOUT" default:"5s"`
}

// SuccessMessage — текст подтверждения в ответе клиенту.
const SuccessMessage = "Payment successful"

var _ ports.IPaymentUseCase = (*UseCase)(nil)

// UseCase — публикация события оплаты в Kafka и выдача подтверждения.
type UseCase struct {
	producer ports.IProducer
	cfg      Config
	newToken func() string
	log      *slog.Logger
}

// New создаёт юзкейс оплаты.
func New(producer ports.IProducer, cfg Config, log *slog.Logger) *UseCase {
	return &UseCase{
		producer: producer,
		cfg:      cfg,
		newToken: uuid.NewString,
		log:      log,
	}
}
