package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados para la pantalla principal.
type DashboardResponse struct {
	Counts       DashboardCounts `json:"counts"`
	Totals       DashboardTotals `json:"totals"`
	Today        DashboardTotals `json:"today"`
	DailySales   []DailySalesDTO `json:"daily_sales"`
	ExpiringSoon int             `json:"expiring_soon"` // productos que expiran en los próximos 7 días
}

// DashboardCounts totales simples de entidades.
type DashboardCounts struct {
	Products          int `json:"products"`
	Suppliers         int `json:"suppliers"`
	Employees         int `json:"employees"`
	Invoices          int `json:"invoices"`
	ClientRequests    int `json:"client_requests"`
	PendingRequests   int `json:"pending_requests"`
	CompletedRequests int `json:"completed_requests"`
}

// DashboardTotals ventas, compras y margen de un periodo.
type DashboardTotals struct {
	Sales    decimal.Decimal `json:"sales"`
	Purchase decimal.Decimal `json:"purchase"`
	Profit   decimal.Decimal `json:"profit"`
}

// DailySalesDTO punto de la serie diaria.
type DailySalesDTO struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Sales    decimal.Decimal `json:"sales"`
	Purchase decimal.Decimal `json:"purchase"`
	Profit   decimal.Decimal `json:"profit"`
}
