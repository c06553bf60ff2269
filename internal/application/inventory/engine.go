package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
)

const (
	tracerName        = "github.com/kurbonovm/mktekhub-sub000/internal/application/inventory"
	defaultMaxRetries = 3
)

// Deps dependencias compartidas por los casos de uso del motor de stock.
// Publisher, Tracer y Clock son opcionales.
type Deps struct {
	TxRunner   TxRunner
	Items      repository.InventoryItemRepository // lecturas fuera de transacción
	Users      repository.UserRepository
	Publisher  ActivityPublisher
	Logger     zerolog.Logger
	Tracer     trace.Tracer
	Clock      func() time.Time
	MaxRetries uint64 // reintentos ante domain.ErrConflict (0 = por defecto)
}

// engine agrupa lo que comparten ajuste, CRUD de registros y traslados:
// resolución del performer, tx con reintento optimista, auditoría y publicación.
type engine struct {
	txRunner   TxRunner
	items      repository.InventoryItemRepository
	users      repository.UserRepository
	publisher  ActivityPublisher
	log        zerolog.Logger
	tracer     trace.Tracer
	now        func() time.Time
	maxRetries uint64
}

func newEngine(d Deps) engine {
	e := engine{
		txRunner:   d.TxRunner,
		items:      d.Items,
		users:      d.Users,
		publisher:  d.Publisher,
		log:        d.Logger,
		tracer:     d.Tracer,
		now:        d.Clock,
		maxRetries: d.MaxRetries,
	}
	if e.tracer == nil {
		e.tracer = otel.Tracer(tracerName)
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.maxRetries == 0 {
		e.maxRetries = defaultMaxRetries
	}
	return e
}

// resolvePerformer valida que la identidad exista y esté activa.
func (e *engine) resolvePerformer(ctx context.Context, performerID string) (*entity.User, error) {
	if performerID == "" {
		return nil, fmt.Errorf("%w: performer is required", domain.ErrInvalidInput)
	}
	user, err := e.users.GetByID(ctx, performerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}
	if !user.Active {
		return nil, fmt.Errorf("%w: user is not active", domain.ErrForbidden)
	}
	return user, nil
}

// newActivity arma la entrada de auditoría; el timestamp sale del reloj inyectado.
func (e *engine) newActivity(item *entity.InventoryItem, activityType string, previous, next int, performer *entity.User, notes *string, now time.Time) *entity.StockActivity {
	return &entity.StockActivity{
		ID:                  uuid.New().String(),
		ItemID:              item.ID,
		SKU:                 item.SKU,
		WarehouseID:         item.WarehouseID,
		Type:                activityType,
		QuantityChange:      next - previous,
		PreviousQuantity:    previous,
		NewQuantity:         next,
		PerformedBy:         performer.ID,
		PerformedByUsername: performer.Username,
		Timestamp:           now,
		Notes:               notes,
	}
}

// publish difunde la actividad confirmada. Un fallo solo se registra: la tx ya hizo commit.
func (e *engine) publish(ctx context.Context, activity *entity.StockActivity) {
	if e.publisher == nil || activity == nil {
		return
	}
	if err := e.publisher.Publish(ctx, activity); err != nil {
		e.log.Error().Err(err).
			Str("activity_id", activity.ID).
			Str("sku", activity.SKU).
			Msg("publicar actividad de stock")
	}
}

func (e *engine) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan cierra el span marcando el resultado.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("inventory.error_kind", domain.Kind(err)))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
}
