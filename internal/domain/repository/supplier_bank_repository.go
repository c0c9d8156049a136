package repository

import "github.com/ivascu/gestiune-api/internal/domain/entity"

// SupplierBankRepository define el puerto para los datos bancarios de proveedores.
type SupplierBankRepository interface {
	Create(bank *entity.SupplierBank) error
	GetByID(id string) (*entity.SupplierBank, error)
	Update(bank *entity.SupplierBank) error
	List(limit, offset int) ([]*entity.SupplierBank, error)
	ListBySupplier(supplierID string) ([]*entity.SupplierBank, error)
}
