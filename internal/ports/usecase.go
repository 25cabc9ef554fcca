package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
)

// IPaymentUseCase — публикация события оплаты и подтверждение клиенту.
type IPaymentUseCase interface {
	Pay(ctx context.Context, userID string, cart []domain.CartItem) (*domain.Confirmation, error)
}

// ITopicsUseCase — создание недостающих топиков по манифесту.
type ITopicsUseCase interface {
	Provision(ctx context.Context, required []domain.TopicSpec) ([]string, error)
}
