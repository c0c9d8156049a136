package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para Employee (claim "role" del JWT).
const (
	RoleAdmin    = "admin"
	RoleEmployee = "angajat"
)

// Employee representa un usuario del sistema (empleado o administrador).
type Employee struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Email        string
	LastName     string
	FirstName    string
	Phone        string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Role devuelve el rol derivado de IsAdmin.
func (e *Employee) Role() string {
	if e.IsAdmin {
		return RoleAdmin
	}
	return RoleEmployee
}

// EmployeeBank datos bancarios de un empleado.
type EmployeeBank struct {
	ID            string
	EmployeeID    string
	AccountNumber string
	SWIFT         string
}

// EmployeeSalary pago de salario registrado para un empleado.
type EmployeeSalary struct {
	ID         string
	EmployeeID string
	SalaryDate time.Time
	Amount     decimal.Decimal
	CreatedAt  time.Time
}
