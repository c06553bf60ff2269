package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

var _ repository.StockActivityRepository = (*StockActivityRepo)(nil)

const activityColumns = `id, item_id, sku, warehouse_id, activity_type, quantity_change, previous_quantity,
		new_quantity, performed_by, performed_by_username, timestamp, notes,
		source_warehouse_id, destination_warehouse_id`

// StockActivityRepo historial append-only: solo INSERT y SELECT.
type StockActivityRepo struct {
	q Querier
}

// NewStockActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockActivityRepository(q Querier) *StockActivityRepo {
	return &StockActivityRepo{q: q}
}

func scanActivity(row pgx.Row) (*entity.StockActivity, error) {
	var a entity.StockActivity
	err := row.Scan(
		&a.ID, &a.ItemID, &a.SKU, &a.WarehouseID, &a.Type, &a.QuantityChange, &a.PreviousQuantity,
		&a.NewQuantity, &a.PerformedBy, &a.PerformedByUsername, &a.Timestamp, &a.Notes,
		&a.SourceWarehouseID, &a.DestinationWarehouseID,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserta la actividad.
func (r *StockActivityRepo) Create(ctx context.Context, a *entity.StockActivity) error {
	query := `
		INSERT INTO stock_activities (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.ItemID, a.SKU, a.WarehouseID, a.Type, a.QuantityChange, a.PreviousQuantity,
		a.NewQuantity, a.PerformedBy, a.PerformedByUsername, a.Timestamp, a.Notes,
		a.SourceWarehouseID, a.DestinationWarehouseID,
	)
	if err != nil {
		return fmt.Errorf("insert stock activity: %w", mapError(err))
	}
	return nil
}

// GetByID obtiene una actividad; (nil, nil) si no existe.
func (r *StockActivityRepo) GetByID(ctx context.Context, id string) (*entity.StockActivity, error) {
	a, err := scanActivity(r.q.QueryRow(ctx, `SELECT `+activityColumns+` FROM stock_activities WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock activity: %w", mapError(err))
	}
	return a, nil
}

// List del más reciente al más antiguo. WarehouseID coincide con la bodega del registro
// (origen en traslados) o con la de destino.
func (r *StockActivityRepo) List(ctx context.Context, filter repository.ActivityFilter) ([]*entity.StockActivity, error) {
	var (
		sb    strings.Builder
		args  []any
		where []string
	)
	if filter.ItemID != "" {
		args = append(args, filter.ItemID)
		where = append(where, fmt.Sprintf("item_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where = append(where, fmt.Sprintf("activity_type = $%d", len(args)))
	}
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		n := len(args)
		where = append(where, fmt.Sprintf("(warehouse_id = $%d OR destination_warehouse_id = $%d)", n, n))
	}

	sb.WriteString(`SELECT ` + activityColumns + ` FROM stock_activities`)
	if len(where) > 0 {
		sb.WriteString(` WHERE ` + strings.Join(where, " AND "))
	}
	sb.WriteString(` ORDER BY timestamp DESC, id DESC`)
	args = appendPage(&sb, args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list stock activities: %w", mapError(err))
	}
	defer rows.Close()

	var list []*entity.StockActivity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock activity: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
