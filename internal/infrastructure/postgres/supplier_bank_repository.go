package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

var _ repository.SupplierBankRepository = (*SupplierBankRepo)(nil)

// SupplierBankRepo implementación de SupplierBankRepository sobre PostgreSQL.
type SupplierBankRepo struct {
	q Querier
}

// NewSupplierBankRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierBankRepository(q Querier) *SupplierBankRepo {
	return &SupplierBankRepo{q: q}
}

// Create persiste los datos bancarios de un proveedor.
func (r *SupplierBankRepo) Create(bank *entity.SupplierBank) error {
	query := `
		INSERT INTO supplier_banks (id, supplier_id, account_number, swift)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		bank.ID, bank.SupplierID, bank.AccountNumber, bank.SWIFT,
	)
	if err != nil {
		return fmt.Errorf("insert supplier bank: %w", err)
	}
	return nil
}

// GetByID obtiene datos bancarios por ID.
func (r *SupplierBankRepo) GetByID(id string) (*entity.SupplierBank, error) {
	query := `SELECT id, supplier_id, account_number, swift FROM supplier_banks WHERE id = $1`
	var b entity.SupplierBank
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.SupplierID, &b.AccountNumber, &b.SWIFT,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier bank: %w", err)
	}
	return &b, nil
}

// Update actualiza datos bancarios.
func (r *SupplierBankRepo) Update(bank *entity.SupplierBank) error {
	query := `UPDATE supplier_banks SET account_number = $2, swift = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, bank.ID, bank.AccountNumber, bank.SWIFT)
	if err != nil {
		return fmt.Errorf("update supplier bank: %w", err)
	}
	return nil
}

// List lista datos bancarios con paginación.
func (r *SupplierBankRepo) List(limit, offset int) ([]*entity.SupplierBank, error) {
	query := `SELECT id, supplier_id, account_number, swift FROM supplier_banks ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list supplier banks: %w", err)
	}
	defer rows.Close()
	return collectSupplierBanks(rows)
}

// ListBySupplier lista los datos bancarios de un proveedor.
func (r *SupplierBankRepo) ListBySupplier(supplierID string) ([]*entity.SupplierBank, error) {
	query := `SELECT id, supplier_id, account_number, swift FROM supplier_banks WHERE supplier_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier banks: %w", err)
	}
	defer rows.Close()
	return collectSupplierBanks(rows)
}

func collectSupplierBanks(rows pgx.Rows) ([]*entity.SupplierBank, error) {
	var list []*entity.SupplierBank
	for rows.Next() {
		var b entity.SupplierBank
		if err := rows.Scan(&b.ID, &b.SupplierID, &b.AccountNumber, &b.SWIFT); err != nil {
			return nil, fmt.Errorf("scan supplier bank: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
