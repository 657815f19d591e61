// Package http expõe a API REST sobre Fiber: router, middleware de auth e os
// handlers. Toda resposta usa o envelope {error, data}; falhas chegam ao
// ErrorHandler central como *apperr.Error ou *validator.ValidationError.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pierrepaulo/stock-control/pkg/apperr"
	"github.com/pierrepaulo/stock-control/pkg/logger"
	"github.com/pierrepaulo/stock-control/pkg/validator"
)

// Envelope corpo padrão de toda resposta da API.
type Envelope struct {
	Error *string `json:"error"`
	Data  any     `json:"data"`
}

// success responde com o envelope de sucesso.
func success(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{Error: nil, Data: data})
}

// failure responde com o envelope de erro.
func failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Error: &message, Data: nil})
}

// NewErrorHandler traduz erros dos handlers para o envelope. Erros não
// mapeados viram 500 genérico e são logados; a mensagem interna nunca vaza.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return failure(c, appErr.Status, appErr.Message)
		}

		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return failure(c, fiber.StatusBadRequest, vErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return failure(c, fiberErr.Code, fiberErr.Message)
		}

		log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("erro não tratado")
		return failure(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}
}
