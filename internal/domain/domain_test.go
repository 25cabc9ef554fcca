package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateManifest(t *testing.T) {
	tests := []struct {
		name    string
		specs   []TopicSpec
		wantErr bool
	}{
		{
			name:  "встроенный манифест",
			specs: DefaultManifest(),
		},
		{
			name:  "пустой манифест",
			specs: nil,
		},
		{
			name:    "пустое имя",
			specs:   []TopicSpec{{Name: " ", Partitions: 1, ReplicationFactor: 1}},
			wantErr: true,
		},
		{
			name:    "пробел в начале имени",
			specs:   []TopicSpec{{Name: " payment-successful", Partitions: 3, ReplicationFactor: 3}},
			wantErr: true,
		},
		{
			name:    "пробел в конце имени",
			specs:   []TopicSpec{{Name: "payment-successful\t", Partitions: 3, ReplicationFactor: 3}},
			wantErr: true,
		},
		{
			name:    "недопустимые символы",
			specs:   []TopicSpec{{Name: "orders/eu", Partitions: 1, ReplicationFactor: 1}},
			wantErr: true,
		},
		{
			name:    "точка",
			specs:   []TopicSpec{{Name: "..", Partitions: 1, ReplicationFactor: 1}},
			wantErr: true,
		},
		{
			name:  "точки и подчёркивания",
			specs: []TopicSpec{{Name: "audit.payments_v2", Partitions: 1, ReplicationFactor: 1}},
		},
		{
			name: "дубликат",
			specs: []TopicSpec{
				{Name: "a", Partitions: 1, ReplicationFactor: 1},
				{Name: "a", Partitions: 3, ReplicationFactor: 1},
			},
			wantErr: true,
		},
		{
			name:    "ноль партиций",
			specs:   []TopicSpec{{Name: "a", Partitions: 0, ReplicationFactor: 1}},
			wantErr: true,
		},
		{
			name:    "отрицательная репликация",
			specs:   []TopicSpec{{Name: "a", Partitions: 1, ReplicationFactor: -1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManifest(tt.specs)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, ErrInvalidManifest)
		})
	}
}

func TestDefaultManifest(t *testing.T) {
	specs := DefaultManifest()

	assert.Equal(t, []string{"payment-successful", "order-successful", "email-successful"}, TopicNames(specs))
	for _, s := range specs {
		assert.Equal(t, 3, s.Partitions, s.Name)
		assert.Equal(t, 3, s.ReplicationFactor, s.Name)
	}
}

func TestTopicErrors(t *testing.T) {
	err := error(TopicErrors{
		"b": errors.New("invalid replication factor"),
		"a": errors.New("policy violation"),
	})

	// порядок детерминирован — по имени топика
	assert.Equal(t, "create topics: a: policy violation; b: invalid replication factor", err.Error())

	var te TopicErrors
	wrapped := errors.Join(ErrAdminOperation, err)
	require.True(t, errors.As(wrapped, &te))
	assert.Len(t, te, 2)
}

func TestPaymentEvent_CartPassThrough(t *testing.T) {
	// позиции корзины не разбираются и попадают в событие байт-в-байт
	var cart []CartItem
	require.NoError(t, json.Unmarshal([]byte(`[{"sku":"A1","qty":2},"free-form",7]`), &cart))

	raw, err := json.Marshal(PaymentEvent{UserID: "123", Cart: cart})
	require.NoError(t, err)

	assert.JSONEq(t, `{"userId":"123","cart":[{"sku":"A1","qty":2},"free-form",7]}`, string(raw))
}
