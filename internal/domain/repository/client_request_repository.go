package repository

import "github.com/ivascu/gestiune-api/internal/domain/entity"

// ClientRequestRepository define el puerto para solicitudes de clientes.
type ClientRequestRepository interface {
	Create(request *entity.ClientRequest) error
	GetByID(id string) (*entity.ClientRequest, error)
	Update(request *entity.ClientRequest) error
	List(limit, offset int) ([]*entity.ClientRequest, error)
	Delete(id string) error
}
