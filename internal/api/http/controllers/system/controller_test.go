package system

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newRouter(broker pingFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	New(broker, log).RegisterRoutes(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiveness(t *testing.T) {
	w := get(newRouter(func(context.Context) error { return errors.New("down") }), "/liveness")

	// liveness не зависит от брокера
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Run("брокер доступен", func(t *testing.T) {
		w := get(newRouter(func(context.Context) error { return nil }), "/readyness")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
	})

	t.Run("продюсер не подключён", func(t *testing.T) {
		w := get(newRouter(func(context.Context) error { return errors.New("kafka: not connected") }), "/readyness")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"not ready","error":"kafka: not connected"}`, w.Body.String())
	})
}

func TestMetrics(t *testing.T) {
	w := get(newRouter(func(context.Context) error { return nil }), "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
