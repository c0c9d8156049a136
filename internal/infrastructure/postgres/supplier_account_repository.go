package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

var _ repository.SupplierAccountRepository = (*SupplierAccountRepo)(nil)

// SupplierAccountRepo implementación de SupplierAccountRepository sobre PostgreSQL.
type SupplierAccountRepo struct {
	q Querier
}

// NewSupplierAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierAccountRepository(q Querier) *SupplierAccountRepo {
	return &SupplierAccountRepo{q: q}
}

// Create persiste un movimiento en la cuenta corriente de un proveedor.
func (r *SupplierAccountRepo) Create(account *entity.SupplierAccount) error {
	query := `
		INSERT INTO supplier_accounts (id, supplier_id, transaction_type, amount, transaction_date, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.SupplierID, account.TransactionType, account.Amount,
		account.TransactionDate, account.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("insert supplier account: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *SupplierAccountRepo) GetByID(id string) (*entity.SupplierAccount, error) {
	query := `
		SELECT id, supplier_id, transaction_type, amount, transaction_date, payment_method
		FROM supplier_accounts WHERE id = $1`
	var a entity.SupplierAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.SupplierID, &a.TransactionType, &a.Amount, &a.TransactionDate, &a.PaymentMethod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier account: %w", err)
	}
	return &a, nil
}

// Update actualiza un movimiento.
func (r *SupplierAccountRepo) Update(account *entity.SupplierAccount) error {
	query := `
		UPDATE supplier_accounts SET transaction_type = $2, amount = $3, transaction_date = $4, payment_method = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.TransactionType, account.Amount, account.TransactionDate, account.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("update supplier account: %w", err)
	}
	return nil
}

// List lista movimientos con paginación, los más recientes primero.
func (r *SupplierAccountRepo) List(limit, offset int) ([]*entity.SupplierAccount, error) {
	query := `
		SELECT id, supplier_id, transaction_type, amount, transaction_date, payment_method
		FROM supplier_accounts ORDER BY transaction_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list supplier accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierAccount
	for rows.Next() {
		var a entity.SupplierAccount
		if err := rows.Scan(&a.ID, &a.SupplierID, &a.TransactionType, &a.Amount, &a.TransactionDate, &a.PaymentMethod); err != nil {
			return nil, fmt.Errorf("scan supplier account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
