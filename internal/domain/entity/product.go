package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
//
// Stock es el contador de unidades vendibles y se mantiene como entero no
// negativo en todo momento: el protocolo de reserva de stock (facturación)
// lo decrementa bajo SELECT FOR UPDATE y los flujos de reposición/edición
// lo aumentan. Nunca se muta fuera de una transacción activa.
type Product struct {
	ID              string
	Name            string
	ProductType     string
	PurchasePrice   decimal.Decimal // precio de compra al proveedor
	SalePrice       decimal.Decimal // precio de venta
	TaxRate         decimal.Decimal // porcentaje de IVA, ej. 19.00
	BatchNumber     string
	ShelfNumber     string
	ExpiryDate      time.Time
	ProductionDate  time.Time
	SupplierID      string
	Description     string
	Stock           int // unidades disponibles, >= 0 siempre
	PackageQuantity int
	CreatedAt       time.Time
}

// ProductDetail atributo adicional de un producto (relación one-to-many,
// se elimina en cascada con el producto).
type ProductDetail struct {
	ID             string
	ProductID      string
	AttributeName  string
	AttributeValue string
	UnitMeasure    string
	Description    string
	CreatedAt      time.Time
}
