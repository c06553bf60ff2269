package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/usecase"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
	"github.com/kurbonovm/mktekhub-sub000/internal/infrastructure/memory"
)

func TestActivityUseCase_Consultas(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStockActivityRepository(memory.NewStore())
	dest := "wh-2"
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, a := range []*entity.StockActivity{
		{ID: "a1", ItemID: "it-1", WarehouseID: "wh-1", Type: entity.ActivityTypeReceive},
		{ID: "a2", ItemID: "it-1", WarehouseID: "wh-1", Type: entity.ActivityTypeTransfer, DestinationWarehouseID: &dest},
		{ID: "a3", ItemID: "it-2", WarehouseID: "wh-3", Type: entity.ActivityTypeAdjustment},
	} {
		a.Timestamp = now.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, a))
	}
	uc := usecase.NewActivityUseCase(repo)

	all, err := uc.List(ctx, usecase.ActivityListParams{})
	require.NoError(t, err)
	require.Len(t, all.Items, 3)
	assert.Equal(t, "a3", all.Items[0].ID, "más reciente primero")

	byItem, err := uc.ListByItem(ctx, "it-1", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, byItem.Items, 2)

	byWarehouse, err := uc.ListByWarehouse(ctx, "wh-2", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, byWarehouse.Items, 1)
	assert.Equal(t, "a2", byWarehouse.Items[0].ID)

	recent, err := uc.List(ctx, usecase.ActivityListParams{PageRequest: dto.PageRequest{Limit: 1}})
	require.NoError(t, err)
	assert.Len(t, recent.Items, 1)

	_, err = uc.List(ctx, usecase.ActivityListParams{Type: "SHIP"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetByID(ctx, "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
