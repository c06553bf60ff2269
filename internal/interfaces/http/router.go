package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/analytics"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/auth"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/inventory"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/usecase"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ActivityUC  *usecase.ActivityUseCase
	ItemUC      *inventory.ItemUseCase
	AdjustUC    *inventory.AdjustmentUseCase
	TransferUC  *inventory.TransferUseCase
	BulkUC      *inventory.BulkTransferUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
// Lecturas: cualquier rol autenticado. Escrituras: admin y manager.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	writer := RequireRole(entity.RoleAdmin, entity.RoleManager)

	protected.Get("/auth/me", authHandler.Me)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := protected.Group("/warehouses")
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/alerts", warehouseHandler.Alerts)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/", writer, warehouseHandler.Create)
	warehouses.Put("/:id", writer, warehouseHandler.Update)
	warehouses.Delete("/:id", RequireRole(entity.RoleAdmin), warehouseHandler.Delete)

	// Rutas estáticas antes de /:id.
	inventoryHandler := NewInventoryHandler(deps.ItemUC, deps.AdjustUC, deps.TransferUC, deps.BulkUC)
	inv := protected.Group("/inventory")
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", writer, inventoryHandler.Create)
	inv.Post("/transfer", writer, inventoryHandler.Transfer)
	inv.Post("/transfer/bulk", writer, inventoryHandler.BulkTransfer)
	inv.Get("/:id", inventoryHandler.GetByID)
	inv.Put("/:id", writer, inventoryHandler.Update)
	inv.Delete("/:id", writer, inventoryHandler.Delete)
	inv.Post("/:id/adjust", writer, inventoryHandler.Adjust)
	inv.Post("/:id/receive", writer, inventoryHandler.Receive)

	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities := protected.Group("/activities")
	activities.Get("/", activityHandler.List)
	activities.Get("/item/:id", activityHandler.ByItem)
	activities.Get("/warehouse/:id", activityHandler.ByWarehouse)
	activities.Get("/:id", activityHandler.GetByID)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
}
