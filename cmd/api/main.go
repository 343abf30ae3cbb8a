package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
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

	// El frontend heredado espera montos como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.Store.UsesInsecureDefault() {
		log.Warn().Msg("DB_SECRET no configurado: la base de datos se cifra con la clave por defecto, MODO INSEGURO solo apto para desarrollo")
	}

	file := storage.NewEncryptedFile(cfg.Store.File, cfg.Store.Secret)
	db, err := storage.Open(file, cfg.Store.LegacyFile, cfg.Store.VerifySignature, log)
	if err != nil {
		// Un estado a medio migrar no puede continuar en silencio.
		log.Fatal().Err(err).Msg("apertura de la base de datos")
	}
	db.SetWriteCounter(promauto.NewCounter(prometheus.CounterOpts{
		Name: "farmacia_document_writes_total",
		Help: "Total de escrituras persistidas del documento",
	}))

	stockUC := usecase.NewStockUseCase(db, log)
	saleUC := usecase.NewSaleUseCase(db, log)
	serviceUC := usecase.NewServiceUseCase(db)
	movementUC := usecase.NewMovementUseCase(db)
	bestsellerUC := usecase.NewBestsellerUseCase(db)
	itemUC := usecase.NewItemUseCase(db)
	authUC := usecase.NewAuthUseCase(cfg.Admin, cfg.JWT)
	adminUC := usecase.NewAdminUseCase(db)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	metrics := httpRouter.NewMetrics(prometheus.DefaultRegisterer)
	app.Use(metrics.Middleware())
	app.Get("/metrics", httpRouter.MetricsHandler())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:      stockUC,
		SaleUC:       saleUC,
		ServiceUC:    serviceUC,
		MovementUC:   movementUC,
		BestsellerUC: bestsellerUC,
		ItemUC:       itemUC,
		AuthUC:       authUC,
		AdminUC:      adminUC,
		Log:          log,
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
