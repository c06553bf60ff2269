package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	otelkafka "github.com/Trendyol/otel-kafka-konsumer"
	kafkago "github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/inventory"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/pkg/config"
)

// EventTypeStockActivity tipo de evento publicado por cada actividad confirmada.
const EventTypeStockActivity = "stock.activity.recorded"

var (
	_ inventory.ActivityPublisher = (*Publisher)(nil)
	_ inventory.ActivityPublisher = NoopPublisher{}
)

// MessageWriter subconjunto del writer de kafka-go que usa el publicador.
type MessageWriter interface {
	WriteMessage(ctx context.Context, msg kafkago.Message) error
	Close() error
}

// ActivityEvent payload publicado en el tópico de actividades.
type ActivityEvent struct {
	EventType  string                    `json:"event_type"`
	OccurredAt time.Time                 `json:"occurred_at"`
	Activity   dto.StockActivityResponse `json:"activity"`
}

// Publisher publica actividades de stock como JSON, con el SKU como key.
type Publisher struct {
	writer MessageWriter
}

// NewPublisher construye el publicador sobre un writer ya configurado.
func NewPublisher(w MessageWriter) *Publisher {
	return &Publisher{writer: w}
}

// NewTracedWriter crea el writer de kafka-go envuelto con propagación de trazas.
func NewTracedWriter(cfg config.KafkaConfig, serviceName string, tp trace.TracerProvider) (*otelkafka.Writer, error) {
	base := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.ActivityTopic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafkago.RequireOne,
	}
	w, err := otelkafka.NewWriter(base,
		otelkafka.WithTracerProvider(tp),
		otelkafka.WithPropagator(propagation.TraceContext{}),
		otelkafka.WithAttributes(
			[]attribute.KeyValue{
				semconv.MessagingDestinationNameKey.String(cfg.ActivityTopic),
				attribute.String("messaging.kafka.client_id", serviceName),
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka writer: %w", err)
	}
	return w, nil
}

// Publish serializa la actividad y la escribe en el tópico.
func (p *Publisher) Publish(ctx context.Context, activity *entity.StockActivity) error {
	payload, err := json.Marshal(ActivityEvent{
		EventType:  EventTypeStockActivity,
		OccurredAt: activity.Timestamp,
		Activity:   dto.FromStockActivity(activity),
	})
	if err != nil {
		return fmt.Errorf("marshal activity event: %w", err)
	}
	msg := kafkago.Message{
		Key:   []byte(activity.SKU),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(EventTypeStockActivity)},
			{Key: "activity_type", Value: []byte(activity.Type)},
		},
	}
	if err := p.writer.WriteMessage(ctx, msg); err != nil {
		return fmt.Errorf("write activity %s: %w", activity.ID, err)
	}
	return nil
}

// Close libera el writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher descarta los eventos; se usa cuando no hay brokers configurados.
type NoopPublisher struct{}

// Publish no hace nada.
func (NoopPublisher) Publish(context.Context, *entity.StockActivity) error { return nil }
