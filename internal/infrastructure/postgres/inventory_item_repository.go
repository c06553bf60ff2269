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

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, sku, name, description, category, brand, unit_price, volume_per_unit,
		quantity, reorder_level, warehouse_id, expiration_date, version, created_at, updated_at`

// InventoryItemRepo ledger de inventario sobre PostgreSQL (pool o tx).
type InventoryItemRepo struct {
	q         Querier
	forUpdate bool
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(
		&i.ID, &i.SKU, &i.Name, &i.Description, &i.Category, &i.Brand, &i.UnitPrice, &i.VolumePerUnit,
		&i.Quantity, &i.ReorderLevel, &i.WarehouseID, &i.ExpirationDate, &i.Version, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserta el registro; (sku, warehouse_id) es UNIQUE.
func (r *InventoryItemRepo) Create(ctx context.Context, i *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, sku, name, description, category, brand, unit_price, volume_per_unit,
			quantity, reorder_level, warehouse_id, expiration_date, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.SKU, i.Name, i.Description, i.Category, i.Brand, i.UnitPrice, i.VolumePerUnit,
		i.Quantity, i.ReorderLevel, i.WarehouseID, i.ExpirationDate, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: item with sku %s already exists in warehouse", domain.ErrDuplicate, i.SKU)
		}
		return fmt.Errorf("insert inventory item: %w", mapError(err))
	}
	i.Version = 1
	return nil
}

// GetByID obtiene un registro; (nil, nil) si no existe.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1` + lockClause(r.forUpdate)
	item, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", mapError(err))
	}
	return item, nil
}

// FindBySKUAndWarehouse busca el registro del SKU en la bodega.
func (r *InventoryItemRepo) FindBySKUAndWarehouse(ctx context.Context, sku, warehouseID string) (repository.ItemLookup, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE sku = $1 AND warehouse_id = $2` + lockClause(r.forUpdate)
	item, err := scanItem(r.q.QueryRow(ctx, query, sku, warehouseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.NotFound(), nil
		}
		return repository.NotFound(), fmt.Errorf("find inventory item: %w", mapError(err))
	}
	return repository.Found(item), nil
}

// Update guarda el registro solo si la versión no cambió desde la lectura.
func (r *InventoryItemRepo) Update(ctx context.Context, i *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET sku = $3, name = $4, description = $5, category = $6, brand = $7, unit_price = $8,
			volume_per_unit = $9, quantity = $10, reorder_level = $11, expiration_date = $12,
			updated_at = $13, version = version + 1
		WHERE id = $1 AND version = $2`
	tag, err := r.q.Exec(ctx, query,
		i.ID, i.Version, i.SKU, i.Name, i.Description, i.Category, i.Brand, i.UnitPrice,
		i.VolumePerUnit, i.Quantity, i.ReorderLevel, i.ExpirationDate, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: item with sku %s already exists in warehouse", domain.ErrDuplicate, i.SKU)
		}
		return fmt.Errorf("update inventory item: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM inventory_items WHERE id = $1)`, i.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check inventory item: %w", mapError(err))
		}
		if !exists {
			return fmt.Errorf("%w: inventory item not found", domain.ErrNotFound)
		}
		return fmt.Errorf("%w: inventory item %s", domain.ErrConflict, i.ID)
	}
	i.Version++
	return nil
}

// Delete elimina el registro.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: inventory item not found", domain.ErrNotFound)
	}
	return nil
}

// List lista registros ordenados por SKU y bodega.
func (r *InventoryItemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.InventoryItem, error) {
	var (
		sb    strings.Builder
		args  []any
		where []string
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if filter.WarehouseID != "" {
		add("warehouse_id = $%d", filter.WarehouseID)
	}
	if filter.SKU != "" {
		add("sku = $%d", filter.SKU)
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.LowStockOnly {
		where = append(where, "quantity <= reorder_level")
	}

	sb.WriteString(`SELECT ` + itemColumns + ` FROM inventory_items`)
	if len(where) > 0 {
		sb.WriteString(` WHERE ` + strings.Join(where, " AND "))
	}
	sb.WriteString(` ORDER BY sku, warehouse_id`)
	args = appendPage(&sb, args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", mapError(err))
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
