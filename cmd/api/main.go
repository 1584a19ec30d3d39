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

	"github.com/pakwerk/magazijn-api/internal/application/auth"
	"github.com/pakwerk/magazijn-api/internal/application/exports"
	"github.com/pakwerk/magazijn-api/internal/application/packing"
	"github.com/pakwerk/magazijn-api/internal/application/production"
	"github.com/pakwerk/magazijn-api/internal/application/salesorders"
	"github.com/pakwerk/magazijn-api/internal/application/storage"
	infraexcel "github.com/pakwerk/magazijn-api/internal/infrastructure/excel"
	"github.com/pakwerk/magazijn-api/internal/infrastructure/erpxml"
	infrapdf "github.com/pakwerk/magazijn-api/internal/infrastructure/pdf"
	"github.com/pakwerk/magazijn-api/internal/infrastructure/postgres"
	httpRouter "github.com/pakwerk/magazijn-api/internal/interfaces/http"
	"github.com/pakwerk/magazijn-api/pkg/config"
	"github.com/pakwerk/magazijn-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	prepackQueueRepo := postgres.NewPrepackQueueRepository(pool)
	prepackPackedRepo := postgres.NewPrepackPackedRepository(pool)
	airtecQueueRepo := postgres.NewAirtecQueueRepository(pool)
	airtecPackedRepo := postgres.NewAirtecPackedRepository(pool)
	orderRepo := postgres.NewProductionOrderRepository(pool)
	priceRepo := postgres.NewMaterialPriceRepository(pool)
	timeLogRepo := postgres.NewTimeLogRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	rentalRepo := postgres.NewStorageRentalRepository(pool)
	salesOrderRepo := postgres.NewSalesOrderRepository(pool)

	reportUC := packing.NewReportUseCase(
		prepackQueueRepo, prepackPackedRepo,
		packing.VariantPrepack, cfg.Report.BacklogWorkingDays,
	)
	airtecUC := packing.NewReportUseCase(
		airtecQueueRepo, airtecPackedRepo,
		packing.VariantAirtec, cfg.Report.BacklogWorkingDays,
	)
	prepackUC := packing.NewPrepackUseCase(
		prepackQueueRepo, prepackPackedRepo,
		cfg.Report.BacklogWorkingDays, cfg.Report.LeadTimeWindowDays,
	)

	// PDF: printable rendition of the daily prepack report
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportPDFUC := packing.NewReportPDFUseCase(reportUC, pdfGenerator)

	kpiUC := production.NewKPIUseCase(timeLogRepo, employeeRepo)
	detailsUC := production.NewOrderDetailsUseCase(orderRepo, priceRepo)
	storageUC := storage.NewDashboardUseCase(rentalRepo)

	salesOrderUC := salesorders.NewImportUseCase(infraexcel.NewSalesOrderParser(), salesOrderRepo)
	poInboxUC := exports.NewPOInboxUseCase(infraexcel.NewPackingListParser(), erpxml.NewPOInboxBuilder())

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pakwerk Magazijn API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		PrepackUC:    prepackUC,
		ReportUC:     reportUC,
		AirtecUC:     airtecUC,
		ReportPDFUC:  reportPDFUC,
		KPIUC:        kpiUC,
		DetailsUC:    detailsUC,
		StorageUC:    storageUC,
		SalesOrderUC: salesOrderUC,
		POInboxUC:    poInboxUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
