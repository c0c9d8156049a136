package repository

import "github.com/ivascu/gestiune-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	// CreateDetails persiste todas las líneas en un solo batch. Se invoca una
	// única vez por factura, al final del protocolo de reserva de stock.
	CreateDetails(details []*entity.InvoiceDetail) error
	GetByID(id string) (*entity.Invoice, error)
	GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error)
}
