package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config — настройки логгера. Переменные: <PREFIX>_LOG_LEVEL, <PREFIX>_LOG_FILE.
type Config struct {
	Level string `envconfig:"LEVEL" default:"info"`
	File  string `envconfig:"FILE" default:""` // пусто — только stderr
}

// logWriter открывает файл лога и возвращает writer в файл + stderr (и в файл, и в консоль).
// Без имени файла или при ошибке открытия возвращает только stderr.
func logWriter(file string) io.Writer {
	if file == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// New возвращает текстовый логгер по конфигу.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(logWriter(cfg.File), cfg.Level)
}

// NewWithWriter возвращает логгер с заданным уровнем (debug, info, warn, error), пишущий в w.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel переводит строку уровня в slog.Level; неизвестное значение — Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
