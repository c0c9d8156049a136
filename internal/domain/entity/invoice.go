package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura. Inmutable después de
// crearse; sus líneas y su cliente se eliminan en cascada con ella.
type Invoice struct {
	ID        string
	ClientID  string
	CreatedAt time.Time
}

// InvoiceDetail representa una línea de factura: producto y cantidad vendida.
//
// UnitPrice y UnitCost son instantáneas de los precios del producto tomadas
// bajo el mismo bloqueo de fila en que se descuenta el stock. Las usa solo el
// reporting (dashboard); las invariantes de la reserva de stock no dependen
// de ellas.
type InvoiceDetail struct {
	ID        string
	InvoiceID string
	ProductID string
	Quantity  int // > 0
	UnitPrice decimal.Decimal // precio de venta al momento del descuento
	UnitCost  decimal.Decimal // precio de compra al momento del descuento
	CreatedAt time.Time
}
