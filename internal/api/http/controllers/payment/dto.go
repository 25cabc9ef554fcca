package payment

import (
	"bytes"
	"encoding/json"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
)

// PaymentRequest — тело POST /payment-service. Cart разбирается отдельно, чтобы отличить «нет поля» от «не массив».
type PaymentRequest struct {
	Cart json.RawMessage `json:"cart"`
}

// CartItems возвращает позиции корзины или domain.ErrInvalidCart, если cart отсутствует, null или не массив.
func (r PaymentRequest) CartItems() ([]domain.CartItem, error) {
	raw := bytes.TrimSpace(r.Cart)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, domain.ErrInvalidCart
	}
	items := []domain.CartItem{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domain.ErrInvalidCart
	}
	return items, nil
}

// PaymentResponse — успешный ответ с подтверждением.
type PaymentResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// ErrorResponse — ответ с ошибкой.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
