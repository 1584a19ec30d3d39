package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pakwerk/magazijn-api/internal/application/auth"
	"github.com/pakwerk/magazijn-api/internal/application/exports"
	"github.com/pakwerk/magazijn-api/internal/application/packing"
	"github.com/pakwerk/magazijn-api/internal/application/production"
	"github.com/pakwerk/magazijn-api/internal/application/salesorders"
	"github.com/pakwerk/magazijn-api/internal/application/storage"
)

// RouterDeps carries every use case the HTTP layer exposes.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	PrepackUC    *packing.PrepackUseCase
	ReportUC     *packing.ReportUseCase
	AirtecUC     *packing.ReportUseCase
	ReportPDFUC  *packing.ReportPDFUseCase
	KPIUC        *production.KPIUseCase
	DetailsUC    *production.OrderDetailsUseCase
	StorageUC    *storage.DashboardUseCase
	SalesOrderUC *salesorders.ImportUseCase
	POInboxUC    *exports.POInboxUseCase
	JWTSecret    string
}

// Router registers all API routes. Everything under /api except auth requires
// a valid token; the admin group additionally requires the admin role.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	reportHandler := NewReportHandler(deps.ReportUC, deps.AirtecUC, deps.ReportPDFUC)
	prepackHandler := NewPrepackHandler(deps.PrepackUC)
	productionHandler := NewProductionHandler(deps.KPIUC, deps.DetailsUC)
	storageHandler := NewStorageHandler(deps.StorageUC)
	salesOrderHandler := NewSalesOrderHandler(deps.SalesOrderUC)
	exportHandler := NewExportHandler(deps.POInboxUC)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	reports := protected.Group("/items-to-pack")
	reports.Get("/report", reportHandler.DailyReport)
	reports.Get("/report/pdf", reportHandler.DailyReportPDF)
	protected.Get("/items-to-pack-airtec/report", reportHandler.AirtecDailyReport)

	orders := protected.Group("/production-orders")
	orders.Get("/kpi", productionHandler.KPIReport)
	orders.Get("/order-details", productionHandler.OrderDetails)

	protected.Get("/storage-rentals/dashboard", storageHandler.Dashboard)
	protected.Post("/sales-orders/upload", salesOrderHandler.Upload)
	protected.Post("/exports/po-inbox", exportHandler.POInbox)

	admin := protected.Group("/admin", RequireRole("admin"))
	admin.Get("/prepack-queue", prepackHandler.QueueSnapshot)
}
