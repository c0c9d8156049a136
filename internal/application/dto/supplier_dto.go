package dto

import "github.com/shopspring/decimal"

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id.
type UpdateSupplierRequest = CreateSupplierRequest

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateSupplierBankRequest body para POST /api/suppliers/:id/banks.
type CreateSupplierBankRequest struct {
	AccountNumber string `json:"account_number"`
	SWIFT         string `json:"swift,omitempty"`
}

// SupplierBankResponse datos bancarios en respuestas.
type SupplierBankResponse struct {
	ID            string `json:"id"`
	SupplierID    string `json:"supplier_id"`
	AccountNumber string `json:"account_number"`
	SWIFT         string `json:"swift,omitempty"`
}

// CreateSupplierAccountRequest body para POST /api/supplier-accounts.
type CreateSupplierAccountRequest struct {
	SupplierID      string          `json:"supplier_id"`
	TransactionType string          `json:"transaction_type"` // debit | credit
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transaction_date"` // YYYY-MM-DD
	PaymentMethod   string          `json:"payment_method,omitempty"`
}

// SupplierAccountResponse movimiento de cuenta corriente en respuestas.
type SupplierAccountResponse struct {
	ID              string          `json:"id"`
	SupplierID      string          `json:"supplier_id"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transaction_date"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
}
