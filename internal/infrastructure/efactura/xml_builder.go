// Package efactura genera el XML UBL 2.1 de una factura (formato e-Factura,
// descarga para contabilidad). El documento no va firmado.
package efactura

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/ivascu/gestiune-api/internal/application/billing"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
)

// Namespaces UBL 2.1.
const (
	nsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCAC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCBC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	currencyCode = "RON"
)

var _ billing.InvoiceXMLBuilder = (*XMLBuilderService)(nil)

// XMLBuilderService construye el XML UBL 2.1 de la factura con etree.
type XMLBuilderService struct{}

// NewXMLBuilderService construye el servicio.
func NewXMLBuilderService() *XMLBuilderService { return &XMLBuilderService{} }

// Build genera el documento UBL completo y lo serializa con indentación.
func (s *XMLBuilderService) Build(
	invoice *entity.Invoice,
	client *entity.Client,
	details []billing.InvoiceDetailForPDF,
) ([]byte, error) {
	if invoice == nil || client == nil {
		return nil, fmt.Errorf("efactura: factura o cliente nulos")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", nsInvoice)
	root.CreateAttr("xmlns:cac", nsCAC)
	root.CreateAttr("xmlns:cbc", nsCBC)

	addCBC(root, "UBLVersionID", "2.1")
	addCBC(root, "ID", invoice.ID)
	addCBC(root, "IssueDate", invoice.CreatedAt.Format("2006-01-02"))
	addCBC(root, "InvoiceTypeCode", "380") // factura comercial
	addCBC(root, "DocumentCurrencyCode", currencyCode)

	// Cliente facturado
	customerParty := root.CreateElement("cac:AccountingCustomerParty")
	party := customerParty.CreateElement("cac:Party")
	partyName := party.CreateElement("cac:PartyName")
	addCBC(partyName, "Name", client.Name)
	if client.Address != "" {
		address := party.CreateElement("cac:PostalAddress")
		addCBC(address, "StreetName", client.Address)
	}
	if client.Contact != "" {
		contact := party.CreateElement("cac:Contact")
		addCBC(contact, "Telephone", client.Contact)
	}

	// El esquema UBL exige LegalMonetaryTotal antes de las líneas
	var total decimal.Decimal
	for _, d := range details {
		total = total.Add(d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity))))
	}
	monetary := root.CreateElement("cac:LegalMonetaryTotal")
	payable := addCBC(monetary, "PayableAmount", total.StringFixed(2))
	payable.CreateAttr("currencyID", currencyCode)

	for i, d := range details {
		subtotal := d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))

		line := root.CreateElement("cac:InvoiceLine")
		addCBC(line, "ID", fmt.Sprintf("%d", i+1))
		qty := addCBC(line, "InvoicedQuantity", fmt.Sprintf("%d", d.Quantity))
		qty.CreateAttr("unitCode", "H87") // unidad (pieza)
		amount := addCBC(line, "LineExtensionAmount", subtotal.StringFixed(2))
		amount.CreateAttr("currencyID", currencyCode)

		item := line.CreateElement("cac:Item")
		addCBC(item, "Name", d.ProductName)

		price := line.CreateElement("cac:Price")
		priceAmount := addCBC(price, "PriceAmount", d.UnitPrice.StringFixed(2))
		priceAmount.CreateAttr("currencyID", currencyCode)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("efactura: serializar XML: %w", err)
	}
	return out, nil
}

func addCBC(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + tag)
	el.SetText(value)
	return el
}
