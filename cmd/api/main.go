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

	appanalytics "github.com/ivascu/gestiune-api/internal/application/analytics"
	"github.com/ivascu/gestiune-api/internal/application/auth"
	"github.com/ivascu/gestiune-api/internal/application/billing"
	"github.com/ivascu/gestiune-api/internal/application/usecase"
	"github.com/ivascu/gestiune-api/internal/infrastructure/efactura"
	infrapdf "github.com/ivascu/gestiune-api/internal/infrastructure/pdf"
	"github.com/ivascu/gestiune-api/internal/infrastructure/postgres"
	httpRouter "github.com/ivascu/gestiune-api/internal/interfaces/http"
	"github.com/ivascu/gestiune-api/pkg/config"
	"github.com/ivascu/gestiune-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	// Repositorios sobre el pool (lecturas fuera de transacción)
	supplierRepo := postgres.NewSupplierRepository(pool)
	supplierBankRepo := postgres.NewSupplierBankRepository(pool)
	supplierAccountRepo := postgres.NewSupplierAccountRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	productDetailRepo := postgres.NewProductDetailRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	employeeBankRepo := postgres.NewEmployeeBankRepository(pool)
	salaryRepo := postgres.NewSalaryRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	clientRequestRepo := postgres.NewClientRequestRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, supplierBankRepo, supplierAccountRepo)
	productUC := usecase.NewProductUseCase(txRunner, productRepo, productDetailRepo, supplierRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, employeeBankRepo, salaryRepo)
	clientRequestUC := usecase.NewClientRequestUseCase(clientRequestRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	generateInvoiceUC := billing.NewGenerateInvoiceUseCase(
		txRunner, invoiceRepo, clientRepo, productRepo, log.Zerolog(),
	)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, clientRepo, productRepo, pdfGenerator)
	xmlBuilder := efactura.NewXMLBuilderService()
	invoiceXMLUC := billing.NewExportUseCase(invoiceRepo, clientRepo, productRepo, xmlBuilder)

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
		Title:    "Gestiune API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		SupplierUC:      supplierUC,
		ProductUC:       productUC,
		EmployeeUC:      employeeUC,
		ClientRequestUC: clientRequestUC,
		GenerateInvoice: generateInvoiceUC,
		InvoicePDF:      invoicePDFUC,
		InvoiceXML:      invoiceXMLUC,
		DashboardUC:     dashboardUC,
		JWTSecret:       cfg.JWT.Secret,
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
