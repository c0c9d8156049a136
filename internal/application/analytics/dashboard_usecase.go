package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// Ventana para el contador de productos por expirar.
const expiringWindow = 7 * 24 * time.Hour

// DashboardUseCase agrega contadores, totales de venta/compra y series diarias
// para la pantalla principal.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetDashboard consulta todos los agregados. Las cinco consultas son
// independientes y se lanzan en paralelo.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type countsResult struct {
		counts *repository.EntityCounts
		err    error
	}
	type totalsResult struct {
		totals repository.SalesTotals
		err    error
	}
	type dailyResult struct {
		rows []repository.DailySales
		err  error
	}
	type expiringResult struct {
		n   int
		err error
	}

	countsChan := make(chan countsResult, 1)
	totalsChan := make(chan totalsResult, 1)
	todayChan := make(chan totalsResult, 1)
	dailyChan := make(chan dailyResult, 1)
	expiringChan := make(chan expiringResult, 1)

	go func() {
		counts, err := uc.analyticsRepo.CountEntities(ctx)
		countsChan <- countsResult{counts, err}
	}()
	go func() {
		totals, err := uc.analyticsRepo.GetSalesTotals(ctx, time.Time{}, time.Time{})
		totalsChan <- totalsResult{totals, err}
	}()
	go func() {
		totals, err := uc.analyticsRepo.GetSalesTotals(ctx, dayStart, now)
		todayChan <- totalsResult{totals, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetDailySales(ctx)
		dailyChan <- dailyResult{rows, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountExpiringProducts(ctx, now, now.Add(expiringWindow))
		expiringChan <- expiringResult{n, err}
	}()

	countsRes := <-countsChan
	totalsRes := <-totalsChan
	todayRes := <-todayChan
	dailyRes := <-dailyChan
	expiringRes := <-expiringChan

	if countsRes.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", countsRes.err)
	}
	if totalsRes.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", totalsRes.err)
	}
	if todayRes.err != nil {
		return nil, fmt.Errorf("dashboard: totales de hoy: %w", todayRes.err)
	}
	if dailyRes.err != nil {
		return nil, fmt.Errorf("dashboard: serie diaria: %w", dailyRes.err)
	}
	if expiringRes.err != nil {
		return nil, fmt.Errorf("dashboard: por expirar: %w", expiringRes.err)
	}

	daily := make([]dto.DailySalesDTO, 0, len(dailyRes.rows))
	for _, d := range dailyRes.rows {
		daily = append(daily, dto.DailySalesDTO{
			Date:     d.Date.Format("2006-01-02"),
			Sales:    d.Sales,
			Purchase: d.Purchase,
			Profit:   d.Sales.Sub(d.Purchase),
		})
	}

	return &dto.DashboardResponse{
		Counts: dto.DashboardCounts{
			Products:          countsRes.counts.Products,
			Suppliers:         countsRes.counts.Suppliers,
			Employees:         countsRes.counts.Employees,
			Invoices:          countsRes.counts.Invoices,
			ClientRequests:    countsRes.counts.ClientRequests,
			PendingRequests:   countsRes.counts.PendingRequests,
			CompletedRequests: countsRes.counts.CompletedRequests,
		},
		Totals:       toTotalsDTO(totalsRes.totals),
		Today:        toTotalsDTO(todayRes.totals),
		DailySales:   daily,
		ExpiringSoon: expiringRes.n,
	}, nil
}

func toTotalsDTO(t repository.SalesTotals) dto.DashboardTotals {
	return dto.DashboardTotals{
		Sales:    t.Sales,
		Purchase: t.Purchase,
		Profit:   t.Profit(),
	}
}
