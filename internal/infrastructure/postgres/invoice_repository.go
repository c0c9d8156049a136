package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de una factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `INSERT INTO invoices (id, client_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, invoice.ID, invoice.ClientID, invoice.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateDetails persiste todas las líneas de la factura en un solo batch
// (un round-trip, mismo efecto que un bulk insert).
func (r *InvoiceRepo) CreateDetails(details []*entity.InvoiceDetail) error {
	if len(details) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO invoice_details (id, invoice_id, product_id, quantity, unit_price, unit_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, d := range details {
		batch.Queue(query, d.ID, d.InvoiceID, d.ProductID, d.Quantity, d.UnitPrice, d.UnitCost, d.CreatedAt)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()
	for range details {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert invoice detail: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de una factura.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT id, client_id, created_at FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(&inv.ID, &inv.ClientID, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetDetailsByInvoiceID lista las líneas de una factura.
func (r *InvoiceRepo) GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error) {
	query := `
		SELECT id, invoice_id, product_id, quantity, unit_price, unit_cost, created_at
		FROM invoice_details WHERE invoice_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice details: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceDetail
	for rows.Next() {
		var d entity.InvoiceDetail
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.UnitCost, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
