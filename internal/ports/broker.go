package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import (
	"context"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
)

// IProducer — контракт отправки сообщений в брокер (Kafka). Топик задаётся при создании реализации (конфиг).
// Ключ определяет партицию: сообщения с одним ключом упорядочены.
type IProducer interface {
	Send(ctx context.Context, key, value []byte) error
}

// ITopicAdmin — административное подключение к кластеру на один прогон провиженера.
// Close обязателен на любом пути выхода, в том числе если Connect вернул ошибку.
type ITopicAdmin interface {
	Connect(ctx context.Context) error
	ListTopics(ctx context.Context) ([]string, error)
	// CreateTopics создаёт все топики одним запросом; при waitForLeaders ждёт выбора лидеров всех партиций.
	CreateTopics(ctx context.Context, topics []domain.TopicSpec, waitForLeaders bool) error
	Close() error
}
