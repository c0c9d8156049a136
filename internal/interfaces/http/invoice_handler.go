package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ivascu/gestiune-api/internal/application/billing"
	"github.com/ivascu/gestiune-api/internal/application/dto"
)

// InvoiceHandler maneja la generación y descarga de facturas.
type InvoiceHandler struct {
	generateUC *billing.GenerateInvoiceUseCase
	pdfUC      *billing.PDFUseCase
	exportUC   *billing.ExportUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	generateUC *billing.GenerateInvoiceUseCase,
	pdfUC *billing.PDFUseCase,
	exportUC *billing.ExportUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{generateUC: generateUC, pdfUC: pdfUC, exportUC: exportUC}
}

// Generate godoc
// @Summary      Generar factura
// @Description  Crea cliente, factura y líneas y descuenta el stock en una sola transacción.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateInvoiceRequest  true  "cliente e ítems"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse  "stock insuficiente o conflicto de bloqueo"
// @Router       /api/invoices/generate [post]
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.generateUC.Generate(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("factura creada con éxito", out))
}

// GetByID obtiene el detalle completo de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.generateUC.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("factura", out))
}

// DownloadPDF descarga la representación imprimible de la factura.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// DownloadXML descarga la factura en XML UBL 2.1 (e-Factura).
// GET /api/invoices/:id/xml
func (h *InvoiceHandler) DownloadXML(c *fiber.Ctx) error {
	xmlBytes, filename, err := h.exportUC.DownloadInvoiceXML(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(xmlBytes)
}
