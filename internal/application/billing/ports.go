package billing

import (
	"context"

	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye
// los repos de cliente, producto y factura. La implementación garantiza
// rollback total si fn retorna error.
type BillingTxRunner interface {
	RunInvoice(ctx context.Context, fn func(
		clientRepo repository.ClientRepository,
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
