package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Manufactura-api/internal/application/analytics"
	"github.com/jhoicas/Manufactura-api/internal/application/auth"
	"github.com/jhoicas/Manufactura-api/internal/application/inventory"
	"github.com/jhoicas/Manufactura-api/internal/application/orders"
	"github.com/jhoicas/Manufactura-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	BOMUC          *usecase.BOMUseCase
	LedgerUC       *inventory.LedgerUseCase
	CreateOrderUC  *orders.CreateOrderUseCase
	OrderUC        *orders.OrderUseCase
	AvailabilityUC *orders.AvailabilityUseCase
	OrderPDFUC     *orders.PDFUseCase
	WorkOrderUC    *orders.WorkOrderUseCase
	DashboardUC    *analytics.DashboardUseCase
	AuthUC         *auth.AuthUseCase
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

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	bomHandler := NewBOMHandler(deps.BOMUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/bom", bomHandler.GetActiveByProduct)

	// BOMs (protegido)
	boms := protected.Group("/boms")
	boms.Get("/", bomHandler.List)
	boms.Post("/", bomHandler.Create)

	// Stock ledger (protegido)
	ledger := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledger.Post("/", ledgerHandler.Register)
	ledger.Get("/", ledgerHandler.List)
	ledger.Get("/export", ledgerHandler.Export)
	ledger.Get("/levels", ledgerHandler.Levels)

	// Manufacturing orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrderUC, deps.OrderUC, deps.AvailabilityUC, deps.OrderPDFUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Post("/check-availability", orderHandler.CheckAvailability)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Get("/:id/pdf", orderHandler.DownloadPDF)

	// Work orders (protegido)
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Post("/:id/start", workOrderHandler.Start)
	workOrders.Post("/:id/pause", workOrderHandler.Pause)
	workOrders.Post("/:id/complete", workOrderHandler.Complete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
}
