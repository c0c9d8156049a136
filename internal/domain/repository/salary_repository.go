package repository

import "github.com/ivascu/gestiune-api/internal/domain/entity"

// SalaryRepository define el puerto para los pagos de salario.
type SalaryRepository interface {
	Create(salary *entity.EmployeeSalary) error
	GetByID(id string) (*entity.EmployeeSalary, error)
	Update(salary *entity.EmployeeSalary) error
	List(limit, offset int) ([]*entity.EmployeeSalary, error)
	ListByEmployee(employeeID string) ([]*entity.EmployeeSalary, error)
}
