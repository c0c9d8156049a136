package repository

import "github.com/ivascu/gestiune-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// Los clientes se crean siempre dentro de la transacción de facturación.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
}
