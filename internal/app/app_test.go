package app

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
)

func freePort(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, ln.Close())
	return port
}

// Брокер недоступен: Run останавливает HTTP-сервер и возвращает ErrConnection (main завершится с кодом 1).
func TestRun_ProducerConnectFails(t *testing.T) {
	port := freePort(t)
	t.Setenv("ENV_FILE", "testdata/absent.env")
	t.Setenv("PAYMENT_LOG_LEVEL", "error")
	t.Setenv("PAYMENT_SERVER_HOST", "127.0.0.1")
	t.Setenv("PAYMENT_SERVER_PORT", port)
	t.Setenv("PAYMENT_KAFKA_BROKERS", "127.0.0.1:1")
	t.Setenv("PAYMENT_KAFKA_DIAL_TIMEOUT", "1s")

	cfg, err := LoadCfg()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- New(cfg).Run() }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConnection), "got %v", err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after producer connect failure")
	}

	// порт освобождён: сервер остановлен, а не брошен
	_, err = http.Get("http://127.0.0.1:" + port + "/liveness")
	assert.Error(t, err)
}

// Порт занят: Run возвращает ошибку прослушивания, не дожидаясь брокера.
func TestRun_PortBusy(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	t.Setenv("ENV_FILE", "testdata/absent.env")
	t.Setenv("PAYMENT_LOG_LEVEL", "error")
	t.Setenv("PAYMENT_SERVER_HOST", "127.0.0.1")
	t.Setenv("PAYMENT_SERVER_PORT", strconv.Itoa(ln.Addr().(*net.TCPAddr).Port))
	t.Setenv("PAYMENT_KAFKA_BROKERS", "127.0.0.1:1")

	cfg, err := LoadCfg()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- New(cfg).Run() }()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return on busy port")
	}
}
