package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

var _ repository.EmployeeBankRepository = (*EmployeeBankRepo)(nil)

// EmployeeBankRepo implementación de EmployeeBankRepository sobre PostgreSQL.
type EmployeeBankRepo struct {
	q Querier
}

// NewEmployeeBankRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeBankRepository(q Querier) *EmployeeBankRepo {
	return &EmployeeBankRepo{q: q}
}

// Create persiste los datos bancarios de un empleado.
func (r *EmployeeBankRepo) Create(bank *entity.EmployeeBank) error {
	query := `
		INSERT INTO employee_banks (id, employee_id, account_number, swift)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		bank.ID, bank.EmployeeID, bank.AccountNumber, bank.SWIFT,
	)
	if err != nil {
		return fmt.Errorf("insert employee bank: %w", err)
	}
	return nil
}

// GetByID obtiene datos bancarios por ID.
func (r *EmployeeBankRepo) GetByID(id string) (*entity.EmployeeBank, error) {
	query := `SELECT id, employee_id, account_number, swift FROM employee_banks WHERE id = $1`
	var b entity.EmployeeBank
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.EmployeeID, &b.AccountNumber, &b.SWIFT,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee bank: %w", err)
	}
	return &b, nil
}

// Update actualiza datos bancarios.
func (r *EmployeeBankRepo) Update(bank *entity.EmployeeBank) error {
	query := `UPDATE employee_banks SET account_number = $2, swift = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, bank.ID, bank.AccountNumber, bank.SWIFT)
	if err != nil {
		return fmt.Errorf("update employee bank: %w", err)
	}
	return nil
}

// List lista datos bancarios con paginación.
func (r *EmployeeBankRepo) List(limit, offset int) ([]*entity.EmployeeBank, error) {
	query := `SELECT id, employee_id, account_number, swift FROM employee_banks ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employee banks: %w", err)
	}
	defer rows.Close()
	return collectEmployeeBanks(rows)
}

// ListByEmployee lista los datos bancarios de un empleado.
func (r *EmployeeBankRepo) ListByEmployee(employeeID string) ([]*entity.EmployeeBank, error) {
	query := `SELECT id, employee_id, account_number, swift FROM employee_banks WHERE employee_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list employee banks: %w", err)
	}
	defer rows.Close()
	return collectEmployeeBanks(rows)
}

func collectEmployeeBanks(rows pgx.Rows) ([]*entity.EmployeeBank, error) {
	var list []*entity.EmployeeBank
	for rows.Next() {
		var b entity.EmployeeBank
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.AccountNumber, &b.SWIFT); err != nil {
			return nil, fmt.Errorf("scan employee bank: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
