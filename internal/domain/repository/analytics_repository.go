package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EntityCounts totales simples para el dashboard.
type EntityCounts struct {
	Products          int
	Suppliers         int
	Employees         int
	Invoices          int
	ClientRequests    int
	PendingRequests   int
	CompletedRequests int
}

// SalesTotals sumas de venta, compra y margen calculadas desde las
// instantáneas de precio guardadas en invoice_details.
type SalesTotals struct {
	Sales    decimal.Decimal
	Purchase decimal.Decimal
}

// Profit devuelve ventas menos compras.
func (t SalesTotals) Profit() decimal.Decimal {
	return t.Sales.Sub(t.Purchase)
}

// DailySales totales de un día para las series del dashboard.
type DailySales struct {
	Date     time.Time
	Sales    decimal.Decimal
	Purchase decimal.Decimal
}

// AnalyticsRepository consultas read-only de agregación para el dashboard.
// No participa en ninguna transacción de escritura.
type AnalyticsRepository interface {
	CountEntities(ctx context.Context) (*EntityCounts, error)
	// GetSalesTotals suma ventas y compras en [from, to]; con from/to en cero
	// devuelve los totales históricos.
	GetSalesTotals(ctx context.Context, from, to time.Time) (SalesTotals, error)
	GetDailySales(ctx context.Context) ([]DailySales, error)
	// CountExpiringProducts cuenta productos cuya fecha de expiración cae en [from, to].
	CountExpiringProducts(ctx context.Context, from, to time.Time) (int, error)
}
