package system

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/ports"
)

// Controller — системные маршруты: liveness, readiness, метрики.
type Controller struct {
	broker ports.IHealthChecker
	log    *slog.Logger
}

// New создаёт системный контроллер. Готовность определяется доступностью брокера.
func New(broker ports.IHealthChecker, log *slog.Logger) *Controller {
	return &Controller{broker: broker, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	if err := c.broker.Ping(ctx.Request.Context()); err != nil {
		c.log.Warn("ready check failed", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
