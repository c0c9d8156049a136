package billing

import (
	"context"
	"fmt"

	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// InvoiceDetailForPDF línea de factura enriquecida con el nombre del producto.
type InvoiceDetailForPDF struct {
	entity.InvoiceDetail
	ProductName string
}

// InvoicePDFGenerator puerto del renderizador de PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		client *entity.Client,
		details []InvoiceDetailForPDF,
	) ([]byte, error)
}

// PDFUseCase genera la representación imprimible (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF recupera la factura con cliente y líneas y genera el PDF.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, client, details, err := loadInvoiceData(uc.invoiceRepo, uc.clientRepo, uc.productRepo, invoiceID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, client, details)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s.pdf", inv.ID)
	return pdfBytes, filename, nil
}

// loadInvoiceData carga factura, cliente y líneas enriquecidas con el nombre
// del producto. Compartido por los exports PDF y XML.
func loadInvoiceData(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	invoiceID string,
) (*entity.Invoice, *entity.Client, []InvoiceDetailForPDF, error) {
	inv, err := invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, nil, nil, domain.ErrNotFound
	}

	client, err := clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if client == nil {
		return nil, nil, nil, domain.ErrNotFound
	}

	rawDetails, err := invoiceRepo.GetDetailsByInvoiceID(invoiceID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("obtener detalles: %w", err)
	}

	enriched := make([]InvoiceDetailForPDF, 0, len(rawDetails))
	for _, d := range rawDetails {
		name := "Producto " + d.ProductID // fallback si el producto fue eliminado
		if product, pErr := productRepo.GetByID(d.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		enriched = append(enriched, InvoiceDetailForPDF{
			InvoiceDetail: *d,
			ProductName:   name,
		})
	}
	return inv, client, enriched, nil
}
