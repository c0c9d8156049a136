package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor de mercancía.
type Supplier struct {
	ID          string
	Name        string
	Address     string
	Phone       string
	Email       string
	Description string
	CreatedAt   time.Time
}

// SupplierBank datos bancarios de un proveedor (relación one-to-many).
type SupplierBank struct {
	ID            string
	SupplierID    string
	AccountNumber string
	SWIFT         string
}

// Tipos de transacción en la cuenta corriente del proveedor.
const (
	TransactionDebit  = "debit"
	TransactionCredit = "credit"
)

// SupplierAccount movimiento en la cuenta corriente de un proveedor
// (pagos realizados y deudas registradas).
type SupplierAccount struct {
	ID              string
	SupplierID      string
	TransactionType string // debit | credit
	Amount          decimal.Decimal
	TransactionDate time.Time
	PaymentMethod   string
}
