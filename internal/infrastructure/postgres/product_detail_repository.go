package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

var _ repository.ProductDetailRepository = (*ProductDetailRepo)(nil)

// ProductDetailRepo implementación de ProductDetailRepository sobre PostgreSQL.
type ProductDetailRepo struct {
	q Querier
}

// NewProductDetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductDetailRepository(q Querier) *ProductDetailRepo {
	return &ProductDetailRepo{q: q}
}

// Create persiste un atributo de producto.
func (r *ProductDetailRepo) Create(detail *entity.ProductDetail) error {
	query := `
		INSERT INTO product_details (id, product_id, attribute_name, attribute_value, unit_measure, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.ProductID, detail.AttributeName, detail.AttributeValue,
		detail.UnitMeasure, detail.Description, detail.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product detail: %w", err)
	}
	return nil
}

// GetByID obtiene un atributo por ID.
func (r *ProductDetailRepo) GetByID(id string) (*entity.ProductDetail, error) {
	query := `
		SELECT id, product_id, attribute_name, attribute_value, unit_measure, description, created_at
		FROM product_details WHERE id = $1`
	var d entity.ProductDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.ProductID, &d.AttributeName, &d.AttributeValue, &d.UnitMeasure, &d.Description, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}
	return &d, nil
}

// Update actualiza un atributo de producto.
func (r *ProductDetailRepo) Update(detail *entity.ProductDetail) error {
	query := `
		UPDATE product_details SET attribute_name = $2, attribute_value = $3, unit_measure = $4, description = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.AttributeName, detail.AttributeValue, detail.UnitMeasure, detail.Description,
	)
	if err != nil {
		return fmt.Errorf("update product detail: %w", err)
	}
	return nil
}

// ListByProduct lista los atributos de un producto.
func (r *ProductDetailRepo) ListByProduct(productID string) ([]*entity.ProductDetail, error) {
	query := `
		SELECT id, product_id, attribute_name, attribute_value, unit_measure, description, created_at
		FROM product_details WHERE product_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product details: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductDetail
	for rows.Next() {
		var d entity.ProductDetail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.AttributeName, &d.AttributeValue, &d.UnitMeasure, &d.Description, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
