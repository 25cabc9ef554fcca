package domain

import (
	"fmt"
	"regexp"
)

// maxTopicNameLen — предел длины имени топика в Kafka.
const maxTopicNameLen = 249

var topicNameRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Топики, которые должны существовать в кластере до запуска сервисов.
const (
	TopicOrderSuccessful = "order-successful"
	TopicEmailSuccessful = "email-successful"
)

// TopicSpec — описание топика из манифеста.
type TopicSpec struct {
	Name              string `yaml:"name"`
	Partitions        int    `yaml:"partitions"`
	ReplicationFactor int    `yaml:"replicationFactor"`
}

// DefaultManifest возвращает встроенный манифест: три топика по 3 партиции с фактором репликации 3.
func DefaultManifest() []TopicSpec {
	return []TopicSpec{
		{Name: TopicPaymentSuccessful, Partitions: 3, ReplicationFactor: 3},
		{Name: TopicOrderSuccessful, Partitions: 3, ReplicationFactor: 3},
		{Name: TopicEmailSuccessful, Partitions: 3, ReplicationFactor: 3},
	}
}

// ValidateManifest проверяет имена (допустимые для Kafka символы, уникальность) и положительные partitions/replicationFactor.
// Имя не нормализуется: в кластер уходит ровно то, что проверено.
// Ограничение replicationFactor <= числа брокеров проверяет сам кластер.
func ValidateManifest(specs []TopicSpec) error {
	seen := make(map[string]struct{}, len(specs))
	for i, s := range specs {
		name := s.Name
		if name == "" {
			return fmt.Errorf("%w: topic #%d has empty name", ErrInvalidManifest, i)
		}
		if len(name) > maxTopicNameLen || name == "." || name == ".." || !topicNameRe.MatchString(name) {
			return fmt.Errorf("%w: topic #%d: illegal name %q", ErrInvalidManifest, i, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate topic %q", ErrInvalidManifest, name)
		}
		seen[name] = struct{}{}
		if s.Partitions <= 0 {
			return fmt.Errorf("%w: topic %q: partitions must be positive, got %d", ErrInvalidManifest, name, s.Partitions)
		}
		if s.ReplicationFactor <= 0 {
			return fmt.Errorf("%w: topic %q: replicationFactor must be positive, got %d", ErrInvalidManifest, name, s.ReplicationFactor)
		}
	}
	return nil
}

// TopicNames возвращает имена топиков в порядке манифеста.
func TopicNames(specs []TopicSpec) []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}
