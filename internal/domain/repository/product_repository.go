package repository

import "github.com/ivascu/gestiune-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// GetForUpdate y UpdateStock son las dos únicas operaciones que usa el
// protocolo de reserva de stock; deben invocarse con un repositorio atado a
// una transacción activa (ver postgres.TxRunner).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE)
	// hasta el fin de la transacción. Devuelve (nil, nil) si el id no existe.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock persiste el nuevo stock. La precondición stock >= 0 la
	// garantiza el caller bajo el mismo bloqueo de fila.
	UpdateStock(id string, stock int) error
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	// SearchByName busca por coincidencia parcial de nombre (case-insensitive).
	SearchByName(name string, limit int) ([]*entity.Product, error)
	Delete(id string) error
}
