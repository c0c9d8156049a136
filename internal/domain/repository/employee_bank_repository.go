package repository

import "github.com/ivascu/gestiune-api/internal/domain/entity"

// EmployeeBankRepository define el puerto para los datos bancarios de empleados.
type EmployeeBankRepository interface {
	Create(bank *entity.EmployeeBank) error
	GetByID(id string) (*entity.EmployeeBank, error)
	Update(bank *entity.EmployeeBank) error
	List(limit, offset int) ([]*entity.EmployeeBank, error)
	ListByEmployee(employeeID string) ([]*entity.EmployeeBank, error)
}
