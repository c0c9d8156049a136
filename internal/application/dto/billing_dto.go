package dto

import "github.com/shopspring/decimal"

// GenerateInvoiceRequest body para POST /api/invoices/generate.
// Los datos del cliente crean siempre un cliente nuevo (sin deduplicación).
type GenerateInvoiceRequest struct {
	ClientName    string               `json:"client_name"`
	ClientAddress string               `json:"client_address"`
	ClientContact string               `json:"client_contact"`
	Items         []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea solicitada: producto y cantidad entera.
type InvoiceItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// GenerateInvoiceResponse ids creados por la generación.
type GenerateInvoiceResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
}

// InvoiceResponse factura con detalle para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID         string                  `json:"id"`
	ClientID   string                  `json:"client_id"`
	ClientName string                  `json:"client_name,omitempty"`
	Date       string                  `json:"date"`
	Total      decimal.Decimal         `json:"total"`
	Details    []InvoiceDetailResponse `json:"details"`
}

// InvoiceDetailResponse línea de detalle en la respuesta.
type InvoiceDetailResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
