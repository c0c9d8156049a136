package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// GenerateInvoiceUseCase crea cliente, factura y líneas, y descuenta el stock
// de cada producto, todo en una sola transacción.
type GenerateInvoiceUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	log         zerolog.Logger
}

// NewGenerateInvoiceUseCase construye el caso de uso. Los repos sueltos se
// usan solo para lecturas fuera de transacción (GetInvoice).
func NewGenerateInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	log zerolog.Logger,
) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		log:         log,
	}
}

// Generate ejecuta el protocolo de facturación:
//
//  1. Crea el cliente (siempre uno nuevo, sin deduplicación).
//  2. Crea la cabecera de la factura.
//  3. Por cada línea, en el orden recibido: bloquea la fila del producto
//     (SELECT FOR UPDATE), valida cantidad <= stock y descuenta el stock de
//     inmediato, bajo el mismo bloqueo.
//  4. Persiste todas las líneas en un solo batch al final.
//
// Cualquier fallo — stock insuficiente incluido — aborta la transacción
// completa: no queda cliente, ni factura, ni descuento parcial.
func (uc *GenerateInvoiceUseCase) Generate(ctx context.Context, in dto.GenerateInvoiceRequest) (*dto.GenerateInvoiceResponse, error) {
	if strings.TrimSpace(in.ClientName) == "" ||
		strings.TrimSpace(in.ClientAddress) == "" ||
		strings.TrimSpace(in.ClientContact) == "" ||
		len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.ClientName),
		Address:   strings.TrimSpace(in.ClientAddress),
		Contact:   strings.TrimSpace(in.ClientContact),
		CreatedAt: now,
	}
	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		ClientID:  client.ID,
		CreatedAt: now,
	}

	err := uc.txRunner.RunInvoice(ctx, func(
		clientRepo repository.ClientRepository,
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if err := clientRepo.Create(client); err != nil {
			return err
		}
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}

		details := make([]*entity.InvoiceDetail, 0, len(in.Items))
		for _, item := range in.Items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if item.Quantity > product.Stock {
				return &domain.InsufficientStockError{
					ProductName: product.Name,
					Available:   product.Stock,
				}
			}
			// Descuento inmediato bajo el bloqueo de fila. El clamp a cero no
			// debería activarse nunca tras la validación; queda como red de
			// seguridad del invariante stock >= 0.
			newStock := product.Stock - item.Quantity
			if newStock < 0 {
				newStock = 0
			}
			if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
				return err
			}
			details = append(details, &entity.InvoiceDetail{
				ID:        uuid.New().String(),
				InvoiceID: invoice.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.SalePrice,
				UnitCost:  product.PurchasePrice,
				CreatedAt: now,
			})
		}

		return invoiceRepo.CreateDetails(details)
	})
	if err != nil {
		if stockErr, ok := domain.AsInsufficientStock(err); ok {
			uc.log.Info().
				Str("invoice_id", invoice.ID).
				Str("product", stockErr.ProductName).
				Int("available", stockErr.Available).
				Msg("factura abortada por stock insuficiente")
		}
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", invoice.ID).
		Str("client_id", client.ID).
		Int("lines", len(in.Items)).
		Msg("factura generada")

	return &dto.GenerateInvoiceResponse{ID: invoice.ID, ClientID: client.ID}, nil
}

// GetInvoice obtiene una factura por ID con su detalle completo y el total
// calculado desde las instantáneas de precio.
func (uc *GenerateInvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.invoiceRepo.GetDetailsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, err
	}
	clientName := ""
	if client != nil {
		clientName = client.Name
	}

	resp := &dto.InvoiceResponse{
		ID:         inv.ID,
		ClientID:   inv.ClientID,
		ClientName: clientName,
		Date:       inv.CreatedAt.Format("2006-01-02"),
		Details:    make([]dto.InvoiceDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		subtotal := d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
		resp.Total = resp.Total.Add(subtotal)
		resp.Details = append(resp.Details, dto.InvoiceDetailResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  subtotal,
		})
	}
	return resp, nil
}
