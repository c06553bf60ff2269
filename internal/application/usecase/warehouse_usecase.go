package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// WarehouseUseCase casos de uso CRUD para bodegas y sus alertas de capacidad.
// CurrentCapacity no se edita aquí: solo la mueven los cambios de stock.
type WarehouseUseCase struct {
	repo             repository.WarehouseRepository
	log              zerolog.Logger
	now              func() time.Time
	defaultThreshold decimal.Decimal
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, log zerolog.Logger) *WarehouseUseCase {
	return &WarehouseUseCase{
		repo:             repo,
		log:              log,
		now:              time.Now,
		defaultThreshold: decimal.NewFromInt(entity.DefaultCapacityAlertThreshold),
	}
}

// WithDefaultThreshold cambia el umbral de alerta que reciben las bodegas creadas sin uno explícito.
func (uc *WarehouseUseCase) WithDefaultThreshold(pct int) *WarehouseUseCase {
	uc.defaultThreshold = decimal.NewFromInt(int64(pct))
	return uc
}

func validThreshold(t decimal.Decimal) bool {
	return t.IsPositive() && t.LessThanOrEqual(hundred)
}

// Create crea una bodega activa con capacidad actual cero.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !in.MaxCapacity.IsPositive() {
		return nil, fmt.Errorf("%w: max capacity must be positive", domain.ErrInvalidInput)
	}
	threshold := uc.defaultThreshold
	if in.CapacityAlertThreshold != nil {
		threshold = *in.CapacityAlertThreshold
	}
	if !validThreshold(threshold) {
		return nil, fmt.Errorf("%w: capacity alert threshold must be between 0 and 100", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get warehouse by name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: warehouse name %q already exists", domain.ErrDuplicate, name)
	}

	now := uc.now()
	warehouse := &entity.Warehouse{
		ID:                     uuid.New().String(),
		Name:                   name,
		Location:               in.Location,
		MaxCapacity:            in.MaxCapacity,
		CurrentCapacity:        decimal.Zero,
		CapacityAlertThreshold: threshold,
		IsActive:               true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, fmt.Errorf("create warehouse: %w", err)
	}
	uc.log.Info().Str("warehouse_id", warehouse.ID).Str("name", name).Msg("bodega creada")
	out := dto.FromWarehouse(warehouse)
	return &out, nil
}

// GetByID obtiene una bodega; domain.ErrNotFound si no existe.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromWarehouse(warehouse)
	return &out, nil
}

func (uc *WarehouseUseCase) load(ctx context.Context, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	if warehouse == nil {
		return nil, fmt.Errorf("%w: warehouse not found", domain.ErrNotFound)
	}
	return warehouse, nil
}

// Update actualiza los campos presentes del request.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
		}
		if name != warehouse.Name {
			other, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("get warehouse by name: %w", err)
			}
			if other != nil && other.ID != warehouse.ID {
				return nil, fmt.Errorf("%w: warehouse name %q already exists", domain.ErrDuplicate, name)
			}
		}
		warehouse.Name = name
	}
	if in.Location != nil {
		warehouse.Location = *in.Location
	}
	if in.MaxCapacity != nil {
		if !in.MaxCapacity.IsPositive() {
			return nil, fmt.Errorf("%w: max capacity must be positive", domain.ErrInvalidInput)
		}
		warehouse.MaxCapacity = *in.MaxCapacity
	}
	if in.CapacityAlertThreshold != nil {
		if !validThreshold(*in.CapacityAlertThreshold) {
			return nil, fmt.Errorf("%w: capacity alert threshold must be between 0 and 100", domain.ErrInvalidInput)
		}
		warehouse.CapacityAlertThreshold = *in.CapacityAlertThreshold
	}
	if in.IsActive != nil {
		// Desactivar equivale a la baja lógica: mismo guard que Delete.
		if !*in.IsActive && warehouse.IsActive && warehouse.HasInventory() {
			return nil, fmt.Errorf("%w: cannot delete warehouse with existing inventory", domain.ErrInvalidOperation)
		}
		warehouse.IsActive = *in.IsActive
	}
	warehouse.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, fmt.Errorf("update warehouse: %w", err)
	}
	out := dto.FromWarehouse(warehouse)
	return &out, nil
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(ctx context.Context, activeOnly bool, page dto.PageRequest) (*dto.WarehouseListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.WarehouseFilter{ActiveOnly: activeOnly, Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, dto.FromWarehouse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListCapacityAlerts bodegas activas cuya utilización alcanzó su umbral.
func (uc *WarehouseUseCase) ListCapacityAlerts(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx, repository.WarehouseFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	alerts := make([]dto.WarehouseResponse, 0)
	for _, w := range list {
		if w.IsCapacityAlert() {
			alerts = append(alerts, dto.FromWarehouse(w))
		}
	}
	return alerts, nil
}

// Delete elimina (hard) o desactiva (soft) una bodega. Solo se permite con capacidad actual cero.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string, hard bool) error {
	warehouse, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if warehouse.HasInventory() {
		return fmt.Errorf("%w: cannot delete warehouse with existing inventory", domain.ErrInvalidOperation)
	}
	if hard {
		if err := uc.repo.Delete(ctx, warehouse); err != nil {
			return fmt.Errorf("delete warehouse: %w", err)
		}
	} else {
		warehouse.IsActive = false
		warehouse.UpdatedAt = uc.now()
		if err := uc.repo.Update(ctx, warehouse); err != nil {
			return fmt.Errorf("deactivate warehouse: %w", err)
		}
	}
	uc.log.Info().Str("warehouse_id", id).Bool("hard", hard).Msg("bodega eliminada")
	return nil
}
