package domain

import "encoding/json"

// TopicPaymentSuccessful — топик, в который Publish Service пишет события оплаты.
const TopicPaymentSuccessful = "payment-successful"

// CartItem — позиция корзины. Содержимое не разбирается и уходит в событие как есть.
type CartItem = json.RawMessage

// PaymentEvent — событие успешной оплаты, сериализуется в значение сообщения Kafka.
type PaymentEvent struct {
	UserID string     `json:"userId"`
	Cart   []CartItem `json:"cart"`
}

// Confirmation — ответ клиенту после публикации. Token не связан с offset'ом записи.
type Confirmation struct {
	Token   string
	Message string
}
