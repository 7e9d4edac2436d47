package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrUsernameTaken = errors.New("el username ya está registrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
)

// StockError indica que la cantidad solicitada supera el stock disponible.
// El mensaje nombra ambos valores porque el cliente lo muestra tal cual.
type StockError struct {
	Available int
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("Not enough stock. Available: %d, Requested: %d", e.Available, e.Requested)
}

// IsStockError verifica si err es (o envuelve) un StockError.
func IsStockError(err error) (*StockError, bool) {
	var se *StockError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
