package topics

import (
	"log/slog"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/ports"
)

var _ ports.ITopicsUseCase = (*UseCase)(nil)

// UseCase — провиженинг топиков: создаёт недостающие топики манифеста.
type UseCase struct {
	admin ports.ITopicAdmin
	log   *slog.Logger
}

// New создаёт юзкейс провиженинга. Без логгера используется slog.Default().
func New(admin ports.ITopicAdmin, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{admin: admin, log: log}
}
