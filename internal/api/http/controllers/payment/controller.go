package payment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
	"github.com/sxidsvit/microservices-kafka-cluster/internal/ports"
)

// statusClientClosedRequest — клиент закрыл соединение, не дождавшись ответа (код nginx).
const statusClientClosedRequest = 499

// IdentityConfig — откуда брать пользователя запроса. Переменные: PAYMENT_IDENTITY_HEADER, PAYMENT_IDENTITY_DEFAULT_USER_ID.
// Заголовок проставляет вышестоящий auth-шлюз; DefaultUserID — заглушка на время, пока шлюза нет (пусто — 401).
type IdentityConfig struct {
	Header        string `envconfig:"HEADER" default:"X-User-ID"`
	DefaultUserID string `envconfig:"DEFAULT_USER_ID" default:"123"`
}

// Controller — маршрут оплаты: POST /payment-service.
type Controller struct {
	uc       ports.IPaymentUseCase
	identity IdentityConfig
	log      *slog.Logger
}

// New создаёт контроллер оплаты.
func New(uc ports.IPaymentUseCase, identity IdentityConfig, log *slog.Logger) *Controller {
	return &Controller{uc: uc, identity: identity, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.POST("/payment-service", c.pay)
}

// @Summary Оплатить корзину
// @Description Публикует событие в топик payment-successful и после задержки возвращает токен подтверждения.
// @Tags payment
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Корзина"
// @Success 200 {object} PaymentResponse "Оплата принята"
// @Failure 400 {object} ErrorResponse "Нет корзины или она не массив"
// @Failure 401 {object} ErrorResponse "Не удалось определить пользователя"
// @Failure 500 {object} ErrorResponse "Ошибка публикации"
// @Failure 504 {object} ErrorResponse "Брокер не ответил вовремя"
// @Router /payment-service [post]
func (c *Controller) pay(ctx *gin.Context) {
	var req PaymentRequest
	// пустое тело — то же, что {}
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.log.Warn("payment bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body", Details: err.Error()})
		return
	}

	cart, err := req.CartItems()
	if err != nil {
		c.log.Warn("payment validation failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID := c.userID(ctx)
	if userID == "" {
		c.log.Warn("payment without user identity", "header", c.identity.Header)
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	conf, err := c.uc.Pay(ctx.Request.Context(), userID, cart)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			// событие могло уже уйти в брокер, это не сбой оплаты
			c.log.Info("payment request canceled by client", "user_id", userID, "error", err)
			ctx.AbortWithStatus(statusClientClosedRequest)
		case errors.Is(err, domain.ErrTimeout):
			ctx.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Publish timed out", Details: err.Error()})
		case errors.Is(err, domain.ErrUnauthorized):
			ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		case errors.Is(err, domain.ErrValidation):
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.log.Error("payment failed", "user_id", userID, "error", err)
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, PaymentResponse{Token: conf.Token, Message: conf.Message})
}

// userID — пользователь из заголовка auth-шлюза, иначе заглушка из конфига.
func (c *Controller) userID(ctx *gin.Context) string {
	if c.identity.Header != "" {
		if id := strings.TrimSpace(ctx.GetHeader(c.identity.Header)); id != "" {
			return id
		}
	}
	return c.identity.DefaultUserID
}
