package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

var _ repository.ClientRequestRepository = (*ClientRequestRepo)(nil)

// ClientRequestRepo implementación de ClientRequestRepository sobre PostgreSQL.
type ClientRequestRepo struct {
	q Querier
}

// NewClientRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRequestRepository(q Querier) *ClientRequestRepo {
	return &ClientRequestRepo{q: q}
}

// Create persiste una solicitud de cliente.
func (r *ClientRequestRepo) Create(request *entity.ClientRequest) error {
	query := `
		INSERT INTO client_requests (id, client_name, phone, product_details, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.ClientName, request.Phone, request.ProductDetails,
		request.Status, request.RequestedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *ClientRequestRepo) GetByID(id string) (*entity.ClientRequest, error) {
	query := `
		SELECT id, client_name, phone, product_details, status, requested_at
		FROM client_requests WHERE id = $1`
	var cr entity.ClientRequest
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&cr.ID, &cr.ClientName, &cr.Phone, &cr.ProductDetails, &cr.Status, &cr.RequestedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client request: %w", err)
	}
	return &cr, nil
}

// Update actualiza una solicitud (típicamente marcar status = true).
func (r *ClientRequestRepo) Update(request *entity.ClientRequest) error {
	query := `
		UPDATE client_requests SET client_name = $2, phone = $3, product_details = $4, status = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.ClientName, request.Phone, request.ProductDetails, request.Status,
	)
	if err != nil {
		return fmt.Errorf("update client request: %w", err)
	}
	return nil
}

// Delete elimina una solicitud.
func (r *ClientRequestRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM client_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client request: %w", err)
	}
	return nil
}

// List lista solicitudes con paginación, las más recientes primero.
func (r *ClientRequestRepo) List(limit, offset int) ([]*entity.ClientRequest, error) {
	query := `
		SELECT id, client_name, phone, product_details, status, requested_at
		FROM client_requests ORDER BY requested_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list client requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClientRequest
	for rows.Next() {
		var cr entity.ClientRequest
		if err := rows.Scan(&cr.ID, &cr.ClientName, &cr.Phone, &cr.ProductDetails, &cr.Status, &cr.RequestedAt); err != nil {
			return nil, fmt.Errorf("scan client request: %w", err)
		}
		list = append(list, &cr)
	}
	return list, rows.Err()
}
