package ports

import "context"

// IHealthChecker — проверка готовности зависимости (для readiness).
type IHealthChecker interface {
	Ping(ctx context.Context) error
}
