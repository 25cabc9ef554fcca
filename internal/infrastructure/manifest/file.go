package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sxidsvit/microservices-kafka-cluster/internal/domain"
)

// File — формат файла манифеста:
//
//	topics:
//	  - name: payment-successful
//	    partitions: 3
//	    replicationFactor: 3
type File struct {
	Topics []domain.TopicSpec `yaml:"topics"`
}

// Load читает манифест из YAML-файла. Пустой путь — встроенный манифест по умолчанию.
func Load(path string) ([]domain.TopicSpec, error) {
	if path == "" {
		return domain.DefaultManifest(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает и проверяет манифест. Неизвестные поля — ошибка.
func Parse(data []byte) ([]domain.TopicSpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidManifest, err)
	}
	if len(f.Topics) == 0 {
		return nil, fmt.Errorf("%w: no topics", domain.ErrInvalidManifest)
	}
	if err := domain.ValidateManifest(f.Topics); err != nil {
		return nil, err
	}
	return f.Topics, nil
}
