package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
)

// Pay публикует событие оплаты (ключ — userID, чтобы события одного пользователя шли в одну партицию),
// после успешной записи выдерживает ResponseDelay и возвращает подтверждение.
// Публикация не прерывается отменой запроса, но ограничена PublishTimeout.
func (u *UseCase) Pay(ctx context.Context, userID string, cart []domain.CartItem) (*domain.Confirmation, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if cart == nil {
		return nil, domain.ErrInvalidCart
	}

	value, err := json.Marshal(domain.PaymentEvent{UserID: userID, Cart: cart})
	if err != nil {
		return nil, fmt.Errorf("marshal payment event: %w", err)
	}

	if err := u.publish(ctx, []byte(userID), value); err != nil {
		u.log.Error("payment publish failed", "user_id", userID, "error", err)
		return nil, err
	}
	u.log.Info("payment event published", "user_id", userID, "items", len(cart))

	if err := u.wait(ctx); err != nil {
		return nil, err
	}

	return &domain.Confirmation{
		Token:   u.newToken(),
		Message: SuccessMessage,
	}, nil
}

func (u *UseCase) publish(ctx context.Context, key, value []byte) error {
	pubCtx := context.WithoutCancel(ctx)
	if u.cfg.PublishTimeout > 0 {
		var cancel context.CancelFunc
		pubCtx, cancel = context.WithTimeout(pubCtx, u.cfg.PublishTimeout)
		defer cancel()
	}

	err := u.producer.Send(pubCtx, key, value)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(pubCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s: %w", domain.ErrTimeout, u.cfg.PublishTimeout, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrPublish, err)
}

// wait выдерживает искусственную задержку ответа; отмена запроса прерывает ожидание.
func (u *UseCase) wait(ctx context.Context) error {
	if u.cfg.ResponseDelay <= 0 {
		return nil
	}
	t := time.NewTimer(u.cfg.ResponseDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
