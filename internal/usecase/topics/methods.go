package topics

import (
	"context"
	"fmt"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
)

// Provision подключается к кластеру, сравнивает манифест с существующими топиками и одним запросом
// создаёт недостающие, дожидаясь выбора лидеров. Возвращает имена созданных топиков (пусто — ничего не делали).
// Админ-подключение закрывается на любом пути выхода. Повторный запуск с тем же манифестом ничего не создаёт.
func (u *UseCase) Provision(ctx context.Context, required []domain.TopicSpec) (created []string, err error) {
	if err := domain.ValidateManifest(required); err != nil {
		return nil, err
	}

	defer func() {
		if cerr := u.admin.Close(); cerr != nil {
			u.log.Warn("kafka admin disconnect failed", "error", cerr)
		}
	}()

	if err := u.admin.Connect(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}
	u.log.Info("connected to kafka")

	existing, err := u.admin.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list topics: %w", domain.ErrAdminOperation, err)
	}
	u.log.Info("existing topics", "topics", existing)

	missing := missingTopics(required, existing)
	if len(missing) == 0 {
		u.log.Info("all topics already exist")
		return []string{}, nil
	}

	if err := u.admin.CreateTopics(ctx, missing, true); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAdminOperation, err)
	}

	created = domain.TopicNames(missing)
	u.log.Info("created topics", "topics", created)
	return created, nil
}

// missingTopics — топики манифеста, которых нет среди existing (порядок манифеста сохраняется).
func missingTopics(required []domain.TopicSpec, existing []string) []domain.TopicSpec {
	have := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		have[name] = struct{}{}
	}
	var missing []domain.TopicSpec
	for _, t := range required {
		if _, ok := have[t.Name]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}
