package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute — метка пути для запросов без маршрута (в т.ч. отклонённых CORS до роутинга).
const unmatchedRoute = "unmatched"

var httpMetrics = struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	InFlight prometheus.Gauge
}{
	Requests: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment", Subsystem: "http", Name: "requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"method", "route", "status"}),
	// верхние корзины покрывают задержку ответа оплаты и таймаут публикации
	Duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payment", Subsystem: "http", Name: "request_duration_seconds",
		Help:    "HTTP request duration (seconds)",
		Buckets: []float64{.005, .025, .1, .5, 1, 2.5, 3, 5, 8, 15},
	}, []string{"method", "route"}),
	InFlight: promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "payment", Subsystem: "http", Name: "requests_in_flight",
		Help: "HTTP requests being served",
	}),
}

// PrometheusMetrics — метрики HTTP по шаблону маршрута. /metrics не учитывается.
func PrometheusMetrics(c *gin.Context) {
	if c.Request.URL.Path == "/metrics" {
		c.Next()
		return
	}

	httpMetrics.InFlight.Inc()
	defer httpMetrics.InFlight.Dec()
	start := time.Now()

	c.Next()

	route := c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}
	httpMetrics.Requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	httpMetrics.Duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}
