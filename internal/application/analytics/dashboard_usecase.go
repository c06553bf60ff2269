// Package analytics contiene los casos de uso de lectura agregada sobre inventario,
// bodegas e historial. Nunca modifica estado.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

const dashboardRecentActivities = 5 // actividades en el widget del dashboard

// DashboardUseCase genera el resumen de stock y capacidad para el dashboard.
type DashboardUseCase struct {
	warehouses repository.WarehouseRepository
	items      repository.InventoryItemRepository
	activities repository.StockActivityRepository
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	warehouses repository.WarehouseRepository,
	items repository.InventoryItemRepository,
	activities repository.StockActivityRepository,
) *DashboardUseCase {
	return &DashboardUseCase{warehouses: warehouses, items: items, activities: activities, now: time.Now}
}

// GetSummary construye el StockSummaryResponse.
//
// Tres lecturas en paralelo:
//  1. bodegas activas          → capacidad total/usada y alertas
//  2. registros en stock bajo  → LowStockItems
//  3. últimas actividades      → RecentActivities
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	type warehousesResult struct {
		out *dto.StockSummaryResponse
		err error
	}
	type lowStockResult struct {
		count int
		err   error
	}
	type activitiesResult struct {
		list []dto.StockActivityResponse
		err  error
	}

	whCh := make(chan warehousesResult, 1)
	lowCh := make(chan lowStockResult, 1)
	actCh := make(chan activitiesResult, 1)

	go func() {
		list, err := uc.warehouses.List(ctx, repository.WarehouseFilter{ActiveOnly: true})
		if err != nil {
			whCh <- warehousesResult{err: err}
			return
		}
		out := &dto.StockSummaryResponse{
			TotalMaxCapacity:     decimal.Zero,
			TotalCurrentCapacity: decimal.Zero,
			CapacityAlerts:       []dto.WarehouseResponse{},
		}
		for _, w := range list {
			out.ActiveWarehouses++
			out.TotalMaxCapacity = out.TotalMaxCapacity.Add(w.MaxCapacity)
			out.TotalCurrentCapacity = out.TotalCurrentCapacity.Add(w.CurrentCapacity)
			if w.IsCapacityAlert() {
				out.CapacityAlerts = append(out.CapacityAlerts, dto.FromWarehouse(w))
			}
		}
		whCh <- warehousesResult{out: out}
	}()
	go func() {
		list, err := uc.items.List(ctx, repository.ItemFilter{LowStockOnly: true})
		lowCh <- lowStockResult{count: len(list), err: err}
	}()
	go func() {
		list, err := uc.activities.List(ctx, repository.ActivityFilter{Limit: dashboardRecentActivities})
		if err != nil {
			actCh <- activitiesResult{err: err}
			return
		}
		recent := make([]dto.StockActivityResponse, 0, len(list))
		for _, a := range list {
			recent = append(recent, dto.FromStockActivity(a))
		}
		actCh <- activitiesResult{list: recent}
	}()

	wh := <-whCh
	low := <-lowCh
	act := <-actCh

	if wh.err != nil {
		return nil, fmt.Errorf("dashboard: bodegas: %w", wh.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if act.err != nil {
		return nil, fmt.Errorf("dashboard: actividades: %w", act.err)
	}

	out := wh.out
	out.LowStockItems = low.count
	out.RecentActivities = act.list
	if out.TotalMaxCapacity.IsPositive() {
		out.UtilizationPercentage = out.TotalCurrentCapacity.Div(out.TotalMaxCapacity).Mul(decimal.NewFromInt(100)).Round(2)
	}
	out.DateLabel = monthLabel(uc.now())
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
