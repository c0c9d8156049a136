package repository

import "github.com/ivascu/gestiune-api/internal/domain/entity"

// SupplierAccountRepository define el puerto para la cuenta corriente de proveedores.
type SupplierAccountRepository interface {
	Create(account *entity.SupplierAccount) error
	GetByID(id string) (*entity.SupplierAccount, error)
	Update(account *entity.SupplierAccount) error
	List(limit, offset int) ([]*entity.SupplierAccount, error)
}
