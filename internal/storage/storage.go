// Package storage описывает общие для всех реализаций хранилища виды ошибок
// и структурную проверку записей перед записью в базу.
// Реализации находятся в подпакетах postgresql и mongodb.
package storage

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tutor-booking/internal/lib/validate"
)

var (
	// ErrValidation — запись нарушает ограничения схемы: обязательное поле,
	// допустимое значение перечисления, уникальность email или формат идентификатора.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound — запрошенная по ссылке запись отсутствует.
	ErrNotFound = errors.New("not found")
)

var validatorInstance = validate.New()

// ValidationError уточняет ErrValidation описанием нарушения.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Violation возвращает ValidationError с переданным описанием.
func Violation(reason string) error {
	return &ValidationError{Reason: reason}
}

// ValidateRecord проверяет теги validate у записи и при нарушении
// возвращает ошибку, оборачивающую ErrValidation.
func ValidateRecord(record any) error {
	err := validatorInstance.Struct(record)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return Violation(validate.Describe(errs))
	}
	return Violation(err.Error())
}

// Invalid оборачивает ErrValidation сообщением о конкретном поле.
func Invalid(field, reason string) error {
	return Violation(fmt.Sprintf("field %s %s", field, reason))
}
