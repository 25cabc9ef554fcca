package kafka

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

// ErrProducerClosed — продюсер уже закрыт, повторное подключение невозможно.
var ErrProducerClosed = errors.New("kafka: producer closed")

// writer — то, что продюсер использует у kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — обёртка над kafka.Writer: один на процесс, общий для всех запросов.
// Connect и Close сериализованы мьютексом; Send безопасен для конкурентных вызовов после Connect.
type Producer struct {
	w     writer
	topic string
	probe func(ctx context.Context) error

	mu        sync.Mutex
	connected atomic.Bool
	closed    bool
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Topic возвращает топик, в который пишет продюсер.
func (p *Producer) Topic() string {
	return p.topic
}

// Connect проверяет доступность кластера. Без ретраев: ошибка возвращается как есть.
func (p *Producer) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrProducerClosed
	}
	if p.connected.Load() {
		return nil
	}

	producerMetrics.ConnectAttempts.Inc()
	if err := p.probe(ctx); err != nil {
		producerMetrics.ConnectErrors.Inc()
		return err
	}
	p.connected.Store(true)
	return nil
}

// Send синхронно отправляет одно сообщение и ждёт подтверждения от всех ISR-реплик.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	if !p.connected.Load() {
		return ErrNotConnected
	}

	start := time.Now()
	err := p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   key,
		Value: value,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
	producerMetrics.PublishLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		producerMetrics.Published.WithLabelValues(p.topic, "error").Inc()
		return err
	}
	producerMetrics.Published.WithLabelValues(p.topic, "ok").Inc()
	return nil
}

// Ping проверяет, что продюсер подключён и кластер отвечает (для readiness).
func (p *Producer) Ping(ctx context.Context) error {
	if !p.connected.Load() {
		return ErrNotConnected
	}
	return p.probe(ctx)
}

// Close сбрасывает буфер и закрывает продюсера. Повторный вызов ничего не делает.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.connected.Store(false)
	return p.w.Close()
}
