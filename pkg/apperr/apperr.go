// Package apperr define o erro de aplicação com status HTTP e mensagem
// voltada ao cliente. A camada de serviço levanta apperr.Error; o handler
// central traduz para a resposta {error, data}.
package apperr

// Error erro de aplicação com status HTTP.
type Error struct {
	Status  int
	Message string
	Err     error // sentinela de domínio opcional, preservada para errors.Is
}

// Error implementa a interface error.
func (e *Error) Error() string { return e.Message }

// Unwrap expõe a sentinela de domínio encapsulada.
func (e *Error) Unwrap() error { return e.Err }

// New cria um erro de aplicação.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Wrap cria um erro de aplicação preservando a sentinela de domínio.
func Wrap(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}
