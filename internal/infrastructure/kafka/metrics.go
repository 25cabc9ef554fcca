package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var producerMetrics = struct {
	ConnectAttempts prometheus.Counter
	ConnectErrors   prometheus.Counter
	Published       *prometheus.CounterVec
	PublishLatency  prometheus.Histogram
}{
	ConnectAttempts: promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payment", Subsystem: "kafka_producer", Name: "connect_attempts_total",
		Help: "Kafka producer connect attempts",
	}),
	ConnectErrors: promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payment", Subsystem: "kafka_producer", Name: "connect_errors_total",
		Help: "Kafka producer connect errors",
	}),
	Published: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payment", Subsystem: "kafka_producer", Name: "messages_total",
		Help: "Messages sent to Kafka by result",
	}, []string{"topic", "result"}),
	PublishLatency: promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "payment", Subsystem: "kafka_producer", Name: "publish_latency_seconds",
		Help:    "Publish latency (seconds)",
		Buckets: prometheus.DefBuckets,
	}),
}
