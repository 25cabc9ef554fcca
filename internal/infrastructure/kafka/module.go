package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ErrNotConnected возвращается при обращении к продюсеру или админке до Connect (или после Close).
var ErrNotConnected = errors.New("kafka: not connected")

// Config — настройки Kafka. Переменные: <PREFIX>_KAFKA_BROKERS, <PREFIX>_KAFKA_CLIENT_ID, <PREFIX>_KAFKA_TOPIC и т.д.
type Config struct {
	Brokers       string        `envconfig:"BROKERS" default:"localhost:9094,localhost:9095,localhost:9096"` // через запятую
	ClientID      string        `envconfig:"CLIENT_ID"`
	Topic         string        `envconfig:"TOPIC" default:"payment-successful"` // топик продюсера
	DialTimeout   time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	WriteTimeout  time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	BatchTimeout  time.Duration `envconfig:"BATCH_TIMEOUT" default:"10ms"`
	LeaderTimeout time.Duration `envconfig:"LEADER_TIMEOUT" default:"30s"` // ожидание лидеров новых топиков
}

// brokersSlice возвращает список брокеров из строки (через запятую), пустые элементы отбрасываются.
func (c *Config) brokersSlice() []string {
	if c == nil || strings.TrimSpace(c.Brokers) == "" {
		return []string{"localhost:9094"}
	}
	parts := strings.Split(c.Brokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Client — конфиг и фабрики продюсера/админки. Подключение к брокеру — в Connect у продюсера/админки.
type Client struct {
	cfg *Config
}

// New создаёт клиент по конфигу.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg}
}

func (c *Client) dialer() *kafka.Dialer {
	return &kafka.Dialer{
		ClientID:  c.cfg.ClientID,
		Timeout:   c.cfg.DialTimeout,
		DualStack: true,
	}
}

func (c *Client) transport() *kafka.Transport {
	return &kafka.Transport{
		ClientID:    c.cfg.ClientID,
		DialTimeout: c.cfg.DialTimeout,
	}
}

// dialAny подключается к первому доступному брокеру из списка и проверяет его запросом метаданных.
// Возвращает адрес ответившего брокера; соединение закрывается.
func (c *Client) dialAny(ctx context.Context) (string, error) {
	var errs []error
	for _, addr := range c.cfg.brokersSlice() {
		conn, err := c.dialer().DialContext(ctx, "tcp", addr)
		if err == nil {
			_, err = conn.Brokers()
			_ = conn.Close()
		}
		if err == nil {
			return addr, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", addr, err))
		if ctx.Err() != nil {
			break
		}
	}
	return "", errors.Join(errs...)
}

// Producer создаёт продюсера в топик из конфига. Перед отправкой вызови Connect, после — Close().
func (c *Client) Producer() *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(c.cfg.brokersSlice()...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: c.cfg.WriteTimeout,
		BatchTimeout: c.cfg.BatchTimeout,
		Transport:    c.transport(),
	}
	return &Producer{
		w:     w,
		topic: c.cfg.Topic,
		probe: func(ctx context.Context) error {
			_, err := c.dialAny(ctx)
			return err
		},
	}
}

// Admin создаёт административное подключение для работы с топиками. После использования вызови Close().
func (c *Client) Admin() *Admin {
	return &Admin{
		client:        c,
		transport:     c.transport(),
		leaderTimeout: c.cfg.LeaderTimeout,
		log:           slog.Default(),
	}
}
