package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/api/http/middlewares"
)

// ServerConfig — настройки HTTP-сервера. Переменные: PAYMENT_SERVER_HOST, PAYMENT_SERVER_PORT, PAYMENT_SERVER_CORS_ORIGINS и т.д.
// WriteTimeout должен быть больше задержки ответа и таймаута публикации вместе взятых.
type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"PORT" default:"8000"`
	CORSOrigins     string        `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"` // через запятую
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Addr возвращает адрес "host:port".
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func (c ServerConfig) origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"http://localhost:3000"}
	}
	return out
}

// Controller — контракт: контроллер регистрирует свои маршруты на роутере.
type Controller interface {
	RegisterRoutes(r *gin.Engine)
}

// Server — API-сервер: конфиг и список контроллеров.
type Server struct {
	cfg         ServerConfig
	controllers []Controller
	log         *slog.Logger
	srv         *http.Server
}

// NewServer создаёт сервер с конфигом.
func NewServer(cfg ServerConfig, log *slog.Logger) *Server {
	return &Server{cfg: cfg, log: log}
}

// AddController добавляет один или несколько контроллеров.
func (s *Server) AddController(c ...Controller) {
	s.controllers = append(s.controllers, c...)
}

// Handler собирает роутер: recovery, CORS, метрики, логирование запросов и маршруты контроллеров.
// Запрос с чужим Origin отклоняется CORS-мидлварью (403) и до контроллера не доходит.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middlewares.Recovery(s.log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.origins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middlewares.PrometheusMetrics)
	r.Use(middlewares.RequestLogger(s.log))
	for _, c := range s.controllers {
		c.RegisterRoutes(r)
	}
	return r
}

// Start занимает порт, обслуживает запросы и блокируется до отмены ctx, затем делает graceful shutdown.
// Ошибка занятия порта возвращается сразу, до записи "http server started".
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("http listen: %w", err)
	}

	s.srv = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.log.Info("http server started", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.log.Info("http server stopped")
	return nil
}
