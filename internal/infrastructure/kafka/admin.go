package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/ports"
)

var _ ports.ITopicAdmin = (*Admin)(nil)

// Admin — административный клиент кластера: список топиков и их создание.
// Живёт один прогон провиженера: Connect ... Close.
type Admin struct {
	client        *Client
	transport     *kafka.Transport
	leaderTimeout time.Duration
	log           *slog.Logger

	mu sync.Mutex
	kc *kafka.Client
}

// NewAdmin создаёт админку по конфигу и логгеру.
func NewAdmin(cfg *Config, log *slog.Logger) *Admin {
	a := New(cfg).Admin()
	if log != nil {
		a.log = log
	}
	return a
}

// Connect находит доступный брокер; дальнейшие запросы идут через него (CreateTopics транспорт сам отправит контроллеру).
func (a *Admin) Connect(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.kc != nil {
		return nil
	}
	addr, err := a.client.dialAny(ctx)
	if err != nil {
		return err
	}
	a.kc = &kafka.Client{
		Addr:      kafka.TCP(addr),
		Transport: a.transport,
	}
	a.log.Debug("kafka admin connected", "broker", addr)
	return nil
}

func (a *Admin) conn() (*kafka.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.kc == nil {
		return nil, ErrNotConnected
	}
	return a.kc, nil
}

// ListTopics возвращает имена всех неслужебных топиков кластера.
func (a *Admin) ListTopics(ctx context.Context) ([]string, error) {
	kc, err := a.conn()
	if err != nil {
		return nil, err
	}
	resp, err := kc.Metadata(ctx, &kafka.MetadataRequest{})
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	names := make([]string, 0, len(resp.Topics))
	for _, t := range resp.Topics {
		if t.Internal {
			continue
		}
		names = append(names, t.Name)
	}
	return names, nil
}

// CreateTopics создаёт все топики одним запросом. Ошибки по отдельным топикам возвращаются как domain.TopicErrors.
// При waitForLeaders блокируется, пока у каждой партиции новых топиков не появится лидер (не дольше LeaderTimeout).
func (a *Admin) CreateTopics(ctx context.Context, topics []domain.TopicSpec, waitForLeaders bool) error {
	kc, err := a.conn()
	if err != nil {
		return err
	}
	if len(topics) == 0 {
		return nil
	}

	resp, err := kc.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: topicConfigs(topics),
	})
	if err != nil {
		return fmt.Errorf("create topics: %w", err)
	}
	if err := createErrors(resp.Errors); err != nil {
		return err
	}

	if !waitForLeaders {
		return nil
	}
	return a.waitForLeaders(ctx, kc, topics)
}

// waitForLeaders опрашивает метаданные новых топиков с экспоненциальной паузой, пока все партиции не получат лидера.
func (a *Admin) waitForLeaders(ctx context.Context, kc *kafka.Client, topics []domain.TopicSpec) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	bo.MaxElapsedTime = a.leaderTimeout

	names := domain.TopicNames(topics)
	check := func() error {
		resp, err := kc.Metadata(ctx, &kafka.MetadataRequest{Topics: names})
		if err != nil {
			return err
		}
		return leadersReady(resp.Topics, topics)
	}
	notify := func(err error, delay time.Duration) {
		a.log.Debug("waiting for topic leaders", "reason", err, "retry_in", delay)
	}

	if err := backoff.RetryNotify(check, backoff.WithContext(bo, ctx), notify); err != nil {
		return fmt.Errorf("wait for leaders: %w", err)
	}
	return nil
}

// Close освобождает соединения. Безопасен без предшествующего Connect и при повторном вызове.
func (a *Admin) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.transport.CloseIdleConnections()
	a.kc = nil
	return nil
}

func topicConfigs(topics []domain.TopicSpec) []kafka.TopicConfig {
	out := make([]kafka.TopicConfig, len(topics))
	for i, t := range topics {
		out[i] = kafka.TopicConfig{
			Topic:             t.Name,
			NumPartitions:     t.Partitions,
			ReplicationFactor: t.ReplicationFactor,
		}
	}
	return out
}

// createErrors собирает ошибки по топикам; TOPIC_ALREADY_EXISTS не считается ошибкой (гонка с другим провиженером).
func createErrors(errs map[string]error) error {
	failed := domain.TopicErrors{}
	for name, err := range errs {
		if err == nil || errors.Is(err, kafka.TopicAlreadyExists) {
			continue
		}
		failed[name] = err
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// leadersReady возвращает nil, когда для каждого топика видны все партиции и у каждой есть лидер.
func leadersReady(meta []kafka.Topic, topics []domain.TopicSpec) error {
	byName := make(map[string]kafka.Topic, len(meta))
	for _, t := range meta {
		byName[t.Name] = t
	}
	for _, spec := range topics {
		t, ok := byName[spec.Name]
		if !ok {
			return fmt.Errorf("topic %q: no metadata yet", spec.Name)
		}
		if t.Error != nil {
			return fmt.Errorf("topic %q: %w", spec.Name, t.Error)
		}
		if len(t.Partitions) < spec.Partitions {
			return fmt.Errorf("topic %q: %d of %d partitions visible", spec.Name, len(t.Partitions), spec.Partitions)
		}
		for _, p := range t.Partitions {
			if p.Error != nil {
				return fmt.Errorf("topic %q partition %d: %w", spec.Name, p.ID, p.Error)
			}
			if p.Leader.Host == "" {
				return fmt.Errorf("topic %q partition %d: no leader", spec.Name, p.ID)
			}
		}
	}
	return nil
}
