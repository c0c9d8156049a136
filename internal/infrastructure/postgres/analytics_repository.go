package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregación para el dashboard. Solo lectura,
// siempre sobre el pool (nunca dentro de una transacción de escritura).
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountEntities devuelve los totales simples del dashboard en una sola consulta.
func (r *AnalyticsRepo) CountEntities(ctx context.Context) (*repository.EntityCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM suppliers),
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM invoices),
			(SELECT COUNT(*) FROM client_requests),
			(SELECT COUNT(*) FROM client_requests WHERE status = false),
			(SELECT COUNT(*) FROM client_requests WHERE status = true)`
	var c repository.EntityCounts
	err := r.q.QueryRow(ctx, query).Scan(
		&c.Products, &c.Suppliers, &c.Employees, &c.Invoices,
		&c.ClientRequests, &c.PendingRequests, &c.CompletedRequests,
	)
	if err != nil {
		return nil, fmt.Errorf("count entities: %w", err)
	}
	return &c, nil
}

// GetSalesTotals suma ventas y compras desde las instantáneas de precio de
// invoice_details. Con from/to en cero devuelve los totales históricos.
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (repository.SalesTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(quantity * unit_price), 0),
			COALESCE(SUM(quantity * unit_cost), 0)
		FROM invoice_details`
	args := []any{}
	if !from.IsZero() || !to.IsZero() {
		query += ` WHERE created_at >= $1 AND created_at <= $2`
		args = append(args, from, to)
	}
	var t repository.SalesTotals
	if err := r.q.QueryRow(ctx, query, args...).Scan(&t.Sales, &t.Purchase); err != nil {
		return repository.SalesTotals{}, fmt.Errorf("sales totals: %w", err)
	}
	return t, nil
}

// GetDailySales devuelve las series diarias de venta y compra para el dashboard.
func (r *AnalyticsRepo) GetDailySales(ctx context.Context) ([]repository.DailySales, error) {
	query := `
		SELECT
			date_trunc('day', created_at) AS day,
			COALESCE(SUM(quantity * unit_price), 0),
			COALESCE(SUM(quantity * unit_cost), 0)
		FROM invoice_details
		GROUP BY day
		ORDER BY day`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()
	var list []repository.DailySales
	for rows.Next() {
		var d repository.DailySales
		if err := rows.Scan(&d.Date, &d.Sales, &d.Purchase); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// CountExpiringProducts cuenta productos cuya fecha de expiración cae en [from, to].
func (r *AnalyticsRepo) CountExpiringProducts(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM products WHERE expiry_date >= $1 AND expiry_date <= $2`
	var n int
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("count expiring products: %w", err)
	}
	return n, nil
}
