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
	"github.com/shopspring/decimal"

	"github.com/tax1/inventory-api/internal/application/auth"
	"github.com/tax1/inventory-api/internal/application/billing"
	"github.com/tax1/inventory-api/internal/application/stock"
	"github.com/tax1/inventory-api/internal/application/usecase"
	infrapdf "github.com/tax1/inventory-api/internal/infrastructure/pdf"
	"github.com/tax1/inventory-api/internal/infrastructure/postgres"
	httpRouter "github.com/tax1/inventory-api/internal/interfaces/http"
	"github.com/tax1/inventory-api/pkg/config"
	"github.com/tax1/inventory-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	vatRate := decimal.NewFromFloat(cfg.Tax.VATRate)

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	batchRepo := postgres.NewStockBatchRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := usecase.NewItemUseCase(itemRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	reportUC := usecase.NewReportUseCase(saleRepo, itemRepo, vatRate)
	recordPurchaseUC := stock.NewRecordPurchaseUseCase(txRunner, itemRepo)
	recordSaleUC := stock.NewRecordSaleUseCase(txRunner, itemRepo, vatRate)
	historyUC := stock.NewHistoryUseCase(itemRepo, batchRepo, purchaseRepo, saleRepo, vatRate)

	// PDF: recibo de venta
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := billing.NewReceiptUseCase(saleRepo, itemRepo, userRepo, receiptGenerator, vatRate)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ItemUC:         itemUC,
		SettingsUC:     settingsUC,
		ReportUC:       reportUC,
		RecordPurchase: recordPurchaseUC,
		RecordSale:     recordSaleUC,
		History:        historyUC,
		ReceiptUC:      receiptUC,
		JWTSecret:      cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}
