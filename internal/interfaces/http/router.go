package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ivascu/gestiune-api/internal/application/analytics"
	"github.com/ivascu/gestiune-api/internal/application/auth"
	"github.com/ivascu/gestiune-api/internal/application/billing"
	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	SupplierUC      *usecase.SupplierUseCase
	ProductUC       *usecase.ProductUseCase
	EmployeeUC      *usecase.EmployeeUseCase
	ClientRequestUC *usecase.ClientRequestUseCase
	GenerateInvoice *billing.GenerateInvoiceUseCase
	InvoicePDF      *billing.PDFUseCase
	InvoiceXML      *billing.ExportUseCase
	DashboardUC     *analytics.DashboardUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.OK("ok", nil))
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Post("/:id/banks", supplierHandler.AddBank)
	suppliers.Get("/:id/banks", supplierHandler.ListBanks)
	protected.Put("/supplier-banks/:id", supplierHandler.UpdateBank)

	// Cuenta corriente de proveedores
	accounts := protected.Group("/supplier-accounts")
	accounts.Post("/", supplierHandler.AddAccountEntry)
	accounts.Get("/", supplierHandler.ListAccountEntries)
	accounts.Put("/:id", supplierHandler.UpdateAccountEntry)

	// Products (search antes de :id)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Employees (solo admin)
	employees := protected.Group("/employees", RequireAdmin())
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/banks", employeeHandler.AddBank)
	employees.Get("/:id/banks", employeeHandler.ListBanks)
	employees.Post("/:id/salaries", employeeHandler.AddSalary)
	employees.Get("/:id/salaries", employeeHandler.ListSalaries)
	protected.Put("/employee-banks/:id", RequireAdmin(), employeeHandler.UpdateBank)
	protected.Put("/employee-salaries/:id", RequireAdmin(), employeeHandler.UpdateSalary)

	// Client requests
	requests := protected.Group("/client-requests")
	requestHandler := NewClientRequestHandler(deps.ClientRequestUC)
	requests.Post("/", requestHandler.Create)
	requests.Get("/", requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Put("/:id", requestHandler.Update)
	requests.Delete("/:id", requestHandler.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.GenerateInvoice, deps.InvoicePDF, deps.InvoiceXML)
	invoices.Post("/generate", invoiceHandler.Generate)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/xml", invoiceHandler.DownloadXML)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)
}
