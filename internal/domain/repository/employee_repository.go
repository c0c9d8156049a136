package repository

import "github.com/ivascu/gestiune-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	// GetByUsername devuelve (nil, nil) si el username no existe (login).
	GetByUsername(username string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	List(limit, offset int) ([]*entity.Employee, error)
	Delete(id string) error
}
