package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrConflict cubre fallos transitorios del motor de almacenamiento
	// (deadlock, lock-wait timeout, serialización). No se reintenta aquí.
	ErrConflict = errors.New("conflicto con el estado actual")
)

// InsufficientStockError indica que la cantidad pedida supera el stock actual
// de un producto. Lleva el nombre del producto y las unidades disponibles
// para que el mensaje llegue íntegro al cliente HTTP.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock agotado para «%s»: solo %d unidades disponibles", e.ProductName, e.Available)
}

// AsInsufficientStock devuelve el error tipado si err lo envuelve.
func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var e *InsufficientStockError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
