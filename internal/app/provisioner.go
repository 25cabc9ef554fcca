package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/infrastructure/kafka"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/infrastructure/manifest"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/pkg/logger"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/ports"
	topicsUsecase "github.com/sxidsvit/microservices-kafka-cluster/internal/usecase/topics"
)

// Provisioner — однократное создание топиков из манифеста.
type Provisioner struct {
	cfg ProvisionerConfig
}

// NewProvisioner создаёт утилиту с конфигом.
func NewProvisioner(cfg ProvisionerConfig) *Provisioner {
	return &Provisioner{cfg: cfg}
}

// Run читает манифест и создаёт недостающие топики. Админ-клиент закрывается в юзкейсе на любом исходе.
func (p *Provisioner) Run() error {
	log := logger.New(p.cfg.Log)
	slog.SetDefault(log)

	specs, err := manifest.Load(p.cfg.Manifest)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	admin := kafka.NewAdmin(&p.cfg.Kafka, log)
	uc := topicsUsecase.New(admin, log)
	return provision(ctx, uc, specs, log)
}

func provision(ctx context.Context, uc ports.ITopicsUseCase, specs []domain.TopicSpec, log *slog.Logger) error {
	log.Info("provisioning topics", "topics", domain.TopicNames(specs))

	created, err := uc.Provision(ctx, specs)
	if err != nil {
		var topicErrs domain.TopicErrors
		if errors.As(err, &topicErrs) {
			for topic, cause := range topicErrs {
				log.Error("topic not created", "topic", topic, "error", cause)
			}
		}
		return err
	}

	if len(created) == 0 {
		log.Info("nothing to create")
		return nil
	}
	log.Info("topics ready", "created", created)
	return nil
}
