package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ivascu/gestiune-api/internal/application/billing"
	"github.com/ivascu/gestiune-api/internal/application/usecase"
	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// Ensure TxRunner implements billing.BillingTxRunner and usecase.ProductTxRunner.
var _ billing.BillingTxRunner = (*TxRunner)(nil)
var _ usecase.ProductTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInvoice inicia una transacción con los repos que necesita la generación de
// factura (cliente, producto, factura) y hace Commit o Rollback. Cualquier
// error de fn aborta todo: cliente, cabecera, líneas y descuentos de stock.
func (r *TxRunner) RunInvoice(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	clientRepo := NewClientRepository(tx)
	productRepo := NewProductRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)

	if err := fn(clientRepo, productRepo, invoiceRepo); err != nil {
		if isLockConflict(err) {
			return domain.ErrConflict
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isLockConflict(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProduct inicia una transacción para crear o editar un producto junto con
// sus atributos (misma transacción, todo o nada).
func (r *TxRunner) RunProduct(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	detailRepo repository.ProductDetailRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	detailRepo := NewProductDetailRepository(tx)

	if err := fn(productRepo, detailRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
