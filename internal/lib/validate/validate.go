// Package validate настраивает валидатор структур go-playground/validator
// так, чтобы в сообщениях об ошибках фигурировали JSON-имена полей,
// и формирует из ошибок валидации человеко-читаемый текст.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

// New возвращает валидатор, использующий имена полей из тега json.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Describe склеивает нарушения в одну строку через запятую.
func Describe(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}
