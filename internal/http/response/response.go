// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков в формате, ожидаемом клиентом:
// плоские объекты {status}, {status, message} и {error}.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает структуру JSON‑ответа сервера.
// Поле Status — "ok" при успехе или "error" при неуспехе операции.
// Поле Message — дополнительное сообщение (опционально).
// Поле Error — текст ошибки (опционально, при неуспехе).
type Response struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "ok"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "error"
)

// OK возвращает успешный Response без дополнительных данных.
func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

// OKWithMessage возвращает успешный Response с сообщением.
func OKWithMessage(msg string) Response {
	return Response{
		Status:  StatusOK,
		Message: msg,
	}
}

// Failed возвращает Response со статусом error без текста ошибки.
func Failed() Response {
	return Response{
		Status: StatusError,
	}
}

// Error возвращает Response с переданным текстом ошибки.
func Error(msg string) Response {
	return Response{
		Error: msg,
	}
}

// ValidationError формирует Response с текстом ошибки на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too long", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Error: strings.Join(errsMsgs, ", "),
	}
}
