package billing

import (
	"context"
	"fmt"

	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// InvoiceXMLBuilder puerto del generador de XML UBL 2.1 (e-Factura).
type InvoiceXMLBuilder interface {
	Build(invoice *entity.Invoice, client *entity.Client, details []InvoiceDetailForPDF) ([]byte, error)
}

// ExportUseCase genera el XML UBL de una factura para descarga.
type ExportUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	builder     InvoiceXMLBuilder
}

// NewExportUseCase construye el caso de uso inyectando sus dependencias.
func NewExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	builder InvoiceXMLBuilder,
) *ExportUseCase {
	return &ExportUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		builder:     builder,
	}
}

// DownloadInvoiceXML recupera la factura con cliente y líneas y genera el XML UBL.
func (uc *ExportUseCase) DownloadInvoiceXML(_ context.Context, invoiceID string) (xmlBytes []byte, filename string, err error) {
	inv, client, details, err := loadInvoiceData(uc.invoiceRepo, uc.clientRepo, uc.productRepo, invoiceID)
	if err != nil {
		return nil, "", err
	}

	xmlBytes, err = uc.builder.Build(inv, client, details)
	if err != nil {
		return nil, "", fmt.Errorf("xml: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s.xml", inv.ID)
	return xmlBytes, filename, nil
}
