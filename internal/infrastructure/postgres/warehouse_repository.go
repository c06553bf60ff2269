package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `id, name, location, max_capacity, current_capacity, capacity_alert_threshold,
		is_active, version, created_at, updated_at`

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL (pool o tx).
type WarehouseRepo struct {
	q         Querier
	forUpdate bool
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(
		&w.ID, &w.Name, &w.Location, &w.MaxCapacity, &w.CurrentCapacity, &w.CapacityAlertThreshold,
		&w.IsActive, &w.Version, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste una nueva bodega con versión 1.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, location, max_capacity, current_capacity, capacity_alert_threshold,
			is_active, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		w.ID, w.Name, w.Location, w.MaxCapacity, w.CurrentCapacity, w.CapacityAlertThreshold,
		w.IsActive, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: warehouse name %q already exists", domain.ErrDuplicate, w.Name)
		}
		return fmt.Errorf("insert warehouse: %w", mapError(err))
	}
	w.Version = 1
	return nil
}

// GetByID obtiene una bodega por ID; (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1` + lockClause(r.forUpdate)
	w, err := scanWarehouse(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", mapError(err))
	}
	return w, nil
}

// GetByName obtiene una bodega por nombre; (nil, nil) si no existe.
func (r *WarehouseRepo) GetByName(ctx context.Context, name string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE name = $1`
	w, err := scanWarehouse(r.q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse by name: %w", mapError(err))
	}
	return w, nil
}

// Update guarda la bodega solo si la versión no cambió desde la lectura.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $3, location = $4, max_capacity = $5, current_capacity = $6,
			capacity_alert_threshold = $7, is_active = $8, updated_at = $9, version = version + 1
		WHERE id = $1 AND version = $2`
	tag, err := r.q.Exec(ctx, query,
		w.ID, w.Version, w.Name, w.Location, w.MaxCapacity, w.CurrentCapacity,
		w.CapacityAlertThreshold, w.IsActive, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: warehouse name %q already exists", domain.ErrDuplicate, w.Name)
		}
		return fmt.Errorf("update warehouse: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrStale(ctx, w.ID)
	}
	w.Version++
	return nil
}

// missingOrStale distingue fila eliminada de versión obsoleta.
func (r *WarehouseRepo) missingOrStale(ctx context.Context, id string) error {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM warehouses WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check warehouse: %w", mapError(err))
	}
	if !exists {
		return fmt.Errorf("%w: warehouse not found", domain.ErrNotFound)
	}
	return fmt.Errorf("%w: warehouse %s", domain.ErrConflict, id)
}

// List lista bodegas ordenadas por nombre.
func (r *WarehouseRepo) List(ctx context.Context, filter repository.WarehouseFilter) ([]*entity.Warehouse, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + warehouseColumns + ` FROM warehouses`)
	if filter.ActiveOnly {
		sb.WriteString(` WHERE is_active = TRUE`)
	}
	sb.WriteString(` ORDER BY name`)
	args = appendPage(&sb, args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", mapError(err))
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Delete elimina la bodega; inventory_items se eliminan en cascada (FK ON DELETE CASCADE).
// El WHERE sobre version y current_capacity descarta el borrado si un movimiento
// confirmó entre la lectura y el DELETE.
func (r *WarehouseRepo) Delete(ctx context.Context, w *entity.Warehouse) error {
	tag, err := r.q.Exec(ctx,
		`DELETE FROM warehouses WHERE id = $1 AND version = $2 AND current_capacity = 0`,
		w.ID, w.Version)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrStale(ctx, w.ID)
	}
	return nil
}

// appendPage agrega LIMIT/OFFSET como parámetros posicionales.
func appendPage(sb *strings.Builder, args []any, limit, offset int) []any {
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(sb, ` LIMIT $%d`, len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		fmt.Fprintf(sb, ` OFFSET $%d`, len(args))
	}
	return args
}
