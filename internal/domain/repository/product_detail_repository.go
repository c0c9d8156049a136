package repository

import "github.com/ivascu/gestiune-api/internal/domain/entity"

// ProductDetailRepository define el puerto de persistencia para los atributos
// de producto (se crean y actualizan junto con el producto, misma transacción).
type ProductDetailRepository interface {
	Create(detail *entity.ProductDetail) error
	GetByID(id string) (*entity.ProductDetail, error)
	Update(detail *entity.ProductDetail) error
	ListByProduct(productID string) ([]*entity.ProductDetail, error)
}
