package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/usecase"
)

// ActivityHandler historial de stock (solo lectura).
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Historial de actividades
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        item_id       query  string  false  "Filtrar por registro"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega (origen, destino o propia)"
// @Param        type          query  string  false  "RECEIVE, TRANSFER, ADJUSTMENT, UPDATE, DELETE"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.StockActivityListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), usecase.ActivityListParams{
		ItemID:      c.Query("item_id"),
		WarehouseID: c.Query("warehouse_id"),
		Type:        c.Query("type"),
		PageRequest: pageFrom(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener actividad
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la actividad"
// @Success      200  {object}  dto.StockActivityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [get]
func (h *ActivityHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByItem godoc
// @Summary      Historial de un registro
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.StockActivityListResponse
// @Router       /api/activities/item/{id} [get]
func (h *ActivityHandler) ByItem(c *fiber.Ctx) error {
	out, err := h.uc.ListByItem(c.UserContext(), c.Params("id"), pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByWarehouse godoc
// @Summary      Historial de una bodega
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.StockActivityListResponse
// @Router       /api/activities/warehouse/{id} [get]
func (h *ActivityHandler) ByWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.ListByWarehouse(c.UserContext(), c.Params("id"), pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
