package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest body para POST /api/employees (solo admin).
type CreateEmployeeRequest struct {
	Username  string `json:"username"`
	Password  string `json:"parola"`
	Email     string `json:"email,omitempty"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Phone     string `json:"phone,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateEmployeeRequest body para PUT /api/employees/:id. Password vacío
// conserva el hash actual.
type UpdateEmployeeRequest = CreateEmployeeRequest

// EmployeeResponse empleado en respuestas (nunca incluye el hash).
type EmployeeResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Phone     string `json:"phone,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
	Role      string `json:"role"`
}

// CreateEmployeeBankRequest body para POST /api/employees/:id/banks.
type CreateEmployeeBankRequest struct {
	AccountNumber string `json:"account_number"`
	SWIFT         string `json:"swift,omitempty"`
}

// EmployeeBankResponse datos bancarios en respuestas.
type EmployeeBankResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	AccountNumber string `json:"account_number"`
	SWIFT         string `json:"swift,omitempty"`
}

// CreateSalaryRequest body para POST /api/employees/:id/salaries.
type CreateSalaryRequest struct {
	SalaryDate string          `json:"salary_date"` // YYYY-MM-DD
	Amount     decimal.Decimal `json:"amount"`
}

// SalaryResponse pago de salario en respuestas.
type SalaryResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	SalaryDate string          `json:"salary_date"`
	Amount     decimal.Decimal `json:"amount"`
}
