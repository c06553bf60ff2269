package inventory

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
)

// BulkTransferUseCase procesa un lote de traslados en orden y de a uno.
// Cada fila confirma por su cuenta; un fallo no detiene ni revierte las demás.
type BulkTransferUseCase struct {
	transferer StockTransferer
	log        zerolog.Logger
	tracer     trace.Tracer
}

// NewBulkTransferUseCase construye el coordinador sobre un StockTransferer.
func NewBulkTransferUseCase(transferer StockTransferer, log zerolog.Logger, tracer trace.Tracer) *BulkTransferUseCase {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &BulkTransferUseCase{transferer: transferer, log: log, tracer: tracer}
}

// rowOutcome resultado de una fila: err nil es éxito.
type rowOutcome struct {
	index int
	sku   string
	err   error
}

// BulkTransferStock nunca devuelve error: todo fallo por fila queda en el reporte.
// SuccessfulTransfers + FailedTransfers == TotalTransfers.
func (uc *BulkTransferUseCase) BulkTransferStock(ctx context.Context, performerID string, in dto.BulkTransferRequest) *dto.BulkTransferResult {
	ctx, span := uc.tracer.Start(ctx, "inventory.BulkTransferStock",
		trace.WithAttributes(attribute.Int("inventory.bulk.total", len(in.Transfers))))
	defer span.End()

	result := &dto.BulkTransferResult{
		TotalTransfers: len(in.Transfers),
		Errors:         []dto.BulkTransferError{},
	}
	for i, req := range in.Transfers {
		_, err := uc.transferer.TransferStock(ctx, performerID, req)
		fold(result, rowOutcome{index: i, sku: req.SKU, err: err})
		if err != nil {
			uc.log.Warn().Err(err).
				Int("index", i).
				Str("sku", req.SKU).
				Str("code", domain.Kind(err)).
				Msg("traslado del lote falló")
		}
	}

	span.SetAttributes(
		attribute.Int("inventory.bulk.successful", result.SuccessfulTransfers),
		attribute.Int("inventory.bulk.failed", result.FailedTransfers),
	)
	uc.log.Info().
		Int("total", result.TotalTransfers).
		Int("successful", result.SuccessfulTransfers).
		Int("failed", result.FailedTransfers).
		Msg("lote de traslados procesado")
	return result
}

func fold(result *dto.BulkTransferResult, row rowOutcome) {
	if row.err == nil {
		result.SuccessfulTransfers++
		return
	}
	result.FailedTransfers++
	result.Errors = append(result.Errors, dto.BulkTransferError{
		Index:   row.index,
		SKU:     row.sku,
		Code:    domain.Kind(row.err),
		Message: row.err.Error(),
	})
}
