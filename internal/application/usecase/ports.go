package usecase

import (
	"context"

	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// ProductTxRunner ejecuta una función dentro de una transacción con los repos
// de producto y atributos (crear/editar producto con sus detalles, todo o nada).
type ProductTxRunner interface {
	RunProduct(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		detailRepo repository.ProductDetailRepository,
	) error) error
}
