package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

var _ repository.SalaryRepository = (*SalaryRepo)(nil)

// SalaryRepo implementación de SalaryRepository sobre PostgreSQL.
type SalaryRepo struct {
	q Querier
}

// NewSalaryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalaryRepository(q Querier) *SalaryRepo {
	return &SalaryRepo{q: q}
}

// Create persiste un pago de salario.
func (r *SalaryRepo) Create(salary *entity.EmployeeSalary) error {
	query := `
		INSERT INTO employee_salaries (id, employee_id, salary_date, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		salary.ID, salary.EmployeeID, salary.SalaryDate, salary.Amount, salary.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert salary: %w", err)
	}
	return nil
}

// GetByID obtiene un pago de salario por ID.
func (r *SalaryRepo) GetByID(id string) (*entity.EmployeeSalary, error) {
	query := `SELECT id, employee_id, salary_date, amount, created_at FROM employee_salaries WHERE id = $1`
	var s entity.EmployeeSalary
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.EmployeeID, &s.SalaryDate, &s.Amount, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salary: %w", err)
	}
	return &s, nil
}

// Update actualiza un pago de salario.
func (r *SalaryRepo) Update(salary *entity.EmployeeSalary) error {
	query := `UPDATE employee_salaries SET salary_date = $2, amount = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, salary.ID, salary.SalaryDate, salary.Amount)
	if err != nil {
		return fmt.Errorf("update salary: %w", err)
	}
	return nil
}

// List lista pagos de salario con paginación, los más recientes primero.
func (r *SalaryRepo) List(limit, offset int) ([]*entity.EmployeeSalary, error) {
	query := `
		SELECT id, employee_id, salary_date, amount, created_at
		FROM employee_salaries ORDER BY salary_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	defer rows.Close()
	return collectSalaries(rows)
}

// ListByEmployee lista los pagos de salario de un empleado.
func (r *SalaryRepo) ListByEmployee(employeeID string) ([]*entity.EmployeeSalary, error) {
	query := `
		SELECT id, employee_id, salary_date, amount, created_at
		FROM employee_salaries WHERE employee_id = $1 ORDER BY salary_date DESC`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	defer rows.Close()
	return collectSalaries(rows)
}

func collectSalaries(rows pgx.Rows) ([]*entity.EmployeeSalary, error) {
	var list []*entity.EmployeeSalary
	for rows.Next() {
		var s entity.EmployeeSalary
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.SalaryDate, &s.Amount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan salary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
