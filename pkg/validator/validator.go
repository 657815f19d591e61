// Package validator valida DTOs de entrada via tags `validate`, concatenando
// as mensagens de campo em um único erro (resposta 400 da API).
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Usa o nome do campo da tag json nas mensagens de erro
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationError agrega as mensagens de todos os campos inválidos.
type ValidationError struct {
	Message string
}

// Error devolve as mensagens concatenadas.
func (e *ValidationError) Error() string { return e.Message }

// Struct valida um DTO; retorna *ValidationError com as mensagens
// concatenadas ou nil.
func Struct(data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Message: "entrada inválida"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return &ValidationError{Message: strings.Join(msgs, ", ")}
}

// fieldMessage traduz um erro de campo para a mensagem da API.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", fe.Field())
	case "email":
		return fmt.Sprintf("%s com formato de e-mail inválido", fe.Field())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s deve ser um UUID válido", fe.Field())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter pelo menos %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s deve ser no mínimo %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter no máximo %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s deve ser no máximo %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s inválido", fe.Field())
	}
}
