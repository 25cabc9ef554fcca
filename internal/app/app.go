package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	apihttp "github.com/sxidsvit/microservices-kafka-cluster/internal/api/http"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/api/http/controllers/payment"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/api/http/controllers/system"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/infrastructure/kafka"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/pkg/logger"
	paymentUsecase "github.com/sxidsvit/microservices-kafka-cluster/internal/usecase/payment"
)

// App — сервис оплаты, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (брокер подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run поднимает HTTP-сервер и параллельно подключает продюсер (блокирующий вызов).
// Ошибка подключения продюсера останавливает сервер и возвращается наружу. Продюсер закрывается при выходе.
func (a *App) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	producer := kafka.New(&a.cfg.Kafka).Producer()
	defer func() {
		if err := producer.Close(); err != nil {
			log.Warn("producer close failed", "error", err)
		}
	}()

	uc := paymentUsecase.New(producer, a.cfg.Payment, log)

	srv := apihttp.NewServer(a.cfg.Server, log)
	srv.AddController(
		system.New(producer, log),
		payment.New(uc, a.cfg.Identity, log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		if err := producer.Connect(gctx); err != nil {
			return fmt.Errorf("%w: producer: %w", domain.ErrConnection, err)
		}
		log.Info("producer connected", "topic", producer.Topic(), "brokers", a.cfg.Kafka.Brokers)
		return nil
	})

	log.Info("application started", "http", a.cfg.Server.Addr())
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("application stopped")
	return nil
}
