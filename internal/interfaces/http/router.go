package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tax1/inventory-api/internal/application/auth"
	"github.com/tax1/inventory-api/internal/application/billing"
	"github.com/tax1/inventory-api/internal/application/stock"
	"github.com/tax1/inventory-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	ItemUC         *usecase.ItemUseCase
	SettingsUC     *usecase.SettingsUseCase
	ReportUC       *usecase.ReportUseCase
	RecordPurchase *stock.RecordPurchaseUseCase
	RecordSale     *stock.RecordSaleUseCase
	History        *stock.HistoryUseCase
	ReceiptUC      *billing.ReceiptUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Purchases y Sales (protegido)
	stockHandler := NewStockHandler(deps.RecordPurchase, deps.RecordSale, deps.History, deps.SettingsUC)
	items.Get("/:id/batches", stockHandler.ListBatches)
	purchases := protected.Group("/purchases")
	purchases.Post("/", stockHandler.RecordPurchase)
	purchases.Get("/", stockHandler.ListPurchases)

	sales := protected.Group("/sales")
	sales.Post("/", stockHandler.RecordSale)
	sales.Get("/", stockHandler.ListSales)

	// Recibo PDF (protegido)
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	sales.Get("/:id/receipt", receiptHandler.Download)

	// Settings (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales-export", reportHandler.SalesExport)
	reports.Get("/low-stock", reportHandler.LowStock)
}
