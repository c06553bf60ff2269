package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/kurbonovm/mktekhub-sub000/internal/application/analytics"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/auth"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/inventory"
	"github.com/kurbonovm/mktekhub-sub000/internal/application/usecase"
	"github.com/kurbonovm/mktekhub-sub000/internal/domain/repository"
	infrakafka "github.com/kurbonovm/mktekhub-sub000/internal/infrastructure/kafka"
	"github.com/kurbonovm/mktekhub-sub000/internal/infrastructure/memory"
	"github.com/kurbonovm/mktekhub-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/kurbonovm/mktekhub-sub000/internal/interfaces/http"
	"github.com/kurbonovm/mktekhub-sub000/pkg/config"
	"github.com/kurbonovm/mktekhub-sub000/pkg/logger"
	"github.com/kurbonovm/mktekhub-sub000/pkg/telemetry"
)

const (
	serviceVersion  = "1.0.0"
	swaggerFilePath = "./docs/swagger.json"
)

// stores puertos de persistencia según el driver configurado.
type stores struct {
	tx         inventory.TxRunner
	users      repository.UserRepository
	warehouses repository.WarehouseRepository
	items      repository.InventoryItemRepository
	activities repository.StockActivityRepository
	close      func()
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Inventory.StoreDriver == config.StoreDriverMemory {
		log.Warn().Msg("usando store en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &stores{
			tx:         memory.NewTxRunner(store),
			users:      memory.NewUserRepository(store),
			warehouses: memory.NewWarehouseRepository(store),
			items:      memory.NewInventoryItemRepository(store),
			activities: memory.NewStockActivityRepository(store),
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &stores{
		tx:         postgres.NewTxRunner(pool),
		users:      postgres.NewUserRepository(pool),
		warehouses: postgres.NewWarehouseRepository(pool),
		items:      postgres.NewInventoryItemRepository(pool),
		activities: postgres.NewStockActivityRepository(pool),
		close:      pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Inventory.StoreDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	tp, shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.App.Name, serviceVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar OpenTelemetry")
	}

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer st.close()

	var publisher inventory.ActivityPublisher = infrakafka.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		writer, err := infrakafka.NewTracedWriter(cfg.Kafka, cfg.App.Name, tp)
		if err != nil {
			log.Fatal().Err(err).Msg("configurar Kafka")
		}
		kafkaPublisher := infrakafka.NewPublisher(writer)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar writer de Kafka")
			}
		}()
		publisher = kafkaPublisher
	}

	deps := inventory.Deps{
		TxRunner:   st.tx,
		Items:      st.items,
		Users:      st.users,
		Publisher:  publisher,
		Logger:     log.Component("inventory"),
		Tracer:     tp.Tracer("stock-engine"),
		MaxRetries: uint64(cfg.Inventory.ConflictMaxRetries),
	}
	transferUC := inventory.NewTransferUseCase(deps)

	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFilePath,
			Path:     "docs",
			Title:    "Stock Engine API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	warehouseUC := usecase.NewWarehouseUseCase(st.warehouses, log.Component("warehouses")).
		WithDefaultThreshold(cfg.Inventory.DefaultAlertThreshold)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      usecase.NewUserUseCase(st.users),
		WarehouseUC: warehouseUC,
		ActivityUC:  usecase.NewActivityUseCase(st.activities),
		ItemUC:      inventory.NewItemUseCase(deps),
		AdjustUC:    inventory.NewAdjustmentUseCase(deps),
		TransferUC:  transferUC,
		BulkUC:      inventory.NewBulkTransferUseCase(transferUC, log.Component("bulk-transfer"), deps.Tracer),
		DashboardUC: appanalytics.NewDashboardUseCase(st.warehouses, st.items, st.activities),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado de OpenTelemetry")
	}

	log.Info().Msg("aplicación detenida")
}
