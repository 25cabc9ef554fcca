package domain

import (
	"errors"
	"sort"
	"strings"
)

// Таксономия ошибок. Конкретная причина оборачивается через %w рядом с сентинелом.
var (
	// ErrConnection — кластер недоступен при подключении.
	ErrConnection = errors.New("kafka connection failed")
	// ErrValidation — невалидный вход (тело запроса, манифест).
	ErrValidation = errors.New("validation failed")
	// ErrPublish — брокер отклонил или не доставил сообщение.
	ErrPublish = errors.New("publish failed")
	// ErrAdminOperation — не удалось получить список топиков или создать топики.
	ErrAdminOperation = errors.New("admin operation failed")
	// ErrTimeout — публикация не уложилась в отведённое время.
	ErrTimeout = errors.New("publish timed out")
	// ErrUnauthorized — не удалось определить пользователя запроса.
	ErrUnauthorized = errors.New("user identity is missing")
)

var (
	// ErrInvalidCart — поле cart отсутствует или не массив.
	ErrInvalidCart = &validationError{msg: "Invalid or missing cart"}
	// ErrInvalidManifest — манифест топиков некорректен.
	ErrInvalidManifest = &validationError{msg: "invalid topic manifest"}
)

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }

// TopicErrors — ошибки создания по каждому топику (topic -> причина).
type TopicErrors map[string]error

func (e TopicErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("create topics:")
	for i, name := range names {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(e[name].Error())
	}
	return b.String()
}
