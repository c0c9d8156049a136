package efactura_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivascu/gestiune-api/internal/application/billing"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/infrastructure/efactura"
)

func sampleInvoiceData() (*entity.Invoice, *entity.Client, []billing.InvoiceDetailForPDF) {
	inv := &entity.Invoice{
		ID:        "inv-001",
		ClientID:  "cli-001",
		CreatedAt: time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC),
	}
	client := &entity.Client{
		ID:      "cli-001",
		Name:    "Maria Ionescu",
		Address: "Str. Victoriei 5",
		Contact: "0733123456",
	}
	details := []billing.InvoiceDetailForPDF{
		{
			InvoiceDetail: entity.InvoiceDetail{
				ID:        "d1",
				InvoiceID: "inv-001",
				ProductID: "p1",
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("12.50"),
				UnitCost:  decimal.RequireFromString("8.00"),
			},
			ProductName: "Paracetamol",
		},
		{
			InvoiceDetail: entity.InvoiceDetail{
				ID:        "d2",
				InvoiceID: "inv-001",
				ProductID: "p2",
				Quantity:  1,
				UnitPrice: decimal.RequireFromString("20.00"),
				UnitCost:  decimal.RequireFromString("14.00"),
			},
			ProductName: "Ibuprofeno",
		},
	}
	return inv, client, details
}

func TestBuild_GeneraUBLValido(t *testing.T) {
	inv, client, details := sampleInvoiceData()
	out, err := efactura.NewXMLBuilderService().Build(inv, client, details)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out), "la salida debe ser XML bien formado")

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Invoice", root.Tag)

	assert.Equal(t, "2.1", root.SelectElement("UBLVersionID").Text())
	assert.Equal(t, "inv-001", root.SelectElement("ID").Text())
	assert.Equal(t, "2026-08-15", root.SelectElement("IssueDate").Text())
	assert.Equal(t, "380", root.SelectElement("InvoiceTypeCode").Text())
	assert.Equal(t, "RON", root.SelectElement("DocumentCurrencyCode").Text())
}

func TestBuild_TotalYLineas(t *testing.T) {
	inv, client, details := sampleInvoiceData()
	out, err := efactura.NewXMLBuilderService().Build(inv, client, details)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()

	// 2 x 12.50 + 1 x 20.00 = 45.00
	payable := root.FindElement("LegalMonetaryTotal/PayableAmount")
	require.NotNil(t, payable)
	assert.Equal(t, "45.00", payable.Text())
	assert.Equal(t, "RON", payable.SelectAttrValue("currencyID", ""))

	lines := root.SelectElements("InvoiceLine")
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].SelectElement("ID").Text())
	assert.Equal(t, "Paracetamol", lines[0].FindElement("Item/Name").Text())
	assert.Equal(t, "25.00", lines[0].SelectElement("LineExtensionAmount").Text())
	assert.Equal(t, "Ibuprofeno", lines[1].FindElement("Item/Name").Text())
	assert.Equal(t, "20.00", lines[1].SelectElement("LineExtensionAmount").Text())
}

func TestBuild_TotalAntesDeLasLineas(t *testing.T) {
	inv, client, details := sampleInvoiceData()
	out, err := efactura.NewXMLBuilderService().Build(inv, client, details)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	// El esquema UBL exige LegalMonetaryTotal antes de InvoiceLine
	var monetaryIdx, firstLineIdx = -1, -1
	for i, child := range doc.Root().ChildElements() {
		switch child.Tag {
		case "LegalMonetaryTotal":
			monetaryIdx = i
		case "InvoiceLine":
			if firstLineIdx == -1 {
				firstLineIdx = i
			}
		}
	}
	require.GreaterOrEqual(t, monetaryIdx, 0)
	require.GreaterOrEqual(t, firstLineIdx, 0)
	assert.Less(t, monetaryIdx, firstLineIdx)
}

func TestBuild_SinFacturaOCliente_RetornaError(t *testing.T) {
	inv, client, details := sampleInvoiceData()

	_, err := efactura.NewXMLBuilderService().Build(nil, client, details)
	assert.Error(t, err)

	_, err = efactura.NewXMLBuilderService().Build(inv, nil, details)
	assert.Error(t, err)
}

func TestBuild_SinLineas_TotalCero(t *testing.T) {
	inv, client, _ := sampleInvoiceData()
	out, err := efactura.NewXMLBuilderService().Build(inv, client, nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	payable := doc.Root().FindElement("LegalMonetaryTotal/PayableAmount")
	require.NotNil(t, payable)
	assert.Equal(t, "0.00", payable.Text())
}
