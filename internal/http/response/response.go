// Package response содержит вспомогательные типы и функции для формирования
// JSON-ответов об ошибках HTTP-обработчиков в едином формате.
package response

import (
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tutor-booking/internal/lib/validate"
)

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// Response описывает служебный ответ сервера.
// Поле Status — статус запроса ("OK" или "Error").
// Поле Error — текст ошибки (опционально, при неуспехе).
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

// OK возвращает Response со статусом OK.
func OK() Response {
	return Response{Status: StatusOK}
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Нарушения объединяются через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	return Error(validate.Describe(errs))
}
