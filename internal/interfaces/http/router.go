package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC      *usecase.StockUseCase
	SaleUC       *usecase.SaleUseCase
	ServiceUC    *usecase.ServiceUseCase
	MovementUC   *usecase.MovementUseCase
	BestsellerUC *usecase.BestsellerUseCase
	ItemUC       *usecase.ItemUseCase
	AuthUC       *usecase.AuthUseCase
	AdminUC      *usecase.AdminUseCase
	Log          *logger.Logger
}

// Router registra las rutas de la API. Las rutas de datos quedan públicas
// como en el sistema original; las operaciones sobre el archivo de base de
// datos exigen la sesión admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesión admin (público)
	adminHandler := NewAdminHandler(deps.AuthUC, deps.AdminUC, deps.Log)
	api.Post("/login", adminHandler.Login)
	api.Post("/logout", adminHandler.Logout)
	api.Get("/check-auth", adminHandler.CheckAuth)

	// Stocks
	stocks := api.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC, deps.Log)
	stocks.Get("/", stockHandler.List)
	stocks.Post("/", stockHandler.Create)
	stocks.Put("/:id/history/entry", stockHandler.UpdateHistoryEntry)
	stocks.Delete("/:id/history/entry", stockHandler.DeleteHistoryEntry)
	stocks.Post("/:id/history", stockHandler.AppendHistory)
	stocks.Post("/:id/adjust", stockHandler.Adjust)
	stocks.Put("/:id", stockHandler.Update)
	stocks.Delete("/:id", stockHandler.Delete)

	// Ventas — /bestsellers antes de /:id para que no lo capture el parámetro
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Log)
	sales.Get("/", saleHandler.List)
	sales.Get("/bestsellers", saleHandler.BySold)
	sales.Post("/", saleHandler.Create)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Servicios
	services := api.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC, deps.Log)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Movimientos de caja
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.Log)
	movements.Get("/", movementHandler.List)
	movements.Get("/summary", movementHandler.Summary)
	movements.Post("/", movementHandler.CreateBatch)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Reporte de más vendidos
	bestsellerHandler := NewBestsellerHandler(deps.BestsellerUC, deps.Log)
	api.Get("/bestsellers", bestsellerHandler.List)

	// Items heredados
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.Log)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)

	// Operaciones admin sobre el archivo de base de datos (protegidas)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Get("/download-db", adminHandler.DownloadDB)
	protected.Post("/import-db", adminHandler.ImportDB)
	protected.Get("/history-import", adminHandler.HistoryImport)
}
