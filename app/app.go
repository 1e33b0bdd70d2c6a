package app

import (
	"context"
	"fmt"
	"os"

	"frigorifico-sanpedro/app/controller"
	"frigorifico-sanpedro/app/router"
	"frigorifico-sanpedro/db"
	"frigorifico-sanpedro/repository"
	"frigorifico-sanpedro/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Apply pending schema migrations before serving
	if err := db.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize document store (sales capture)
	if err := db.InitArango(context.Background()); err != nil {
		return fmt.Errorf("failed to initialize document store: %w", err)
	}

	// Base URL for the PDF pipeline's render navigation
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Initialize services
	reportService := service.NewReportService()
	pdfService := service.NewPDFService(baseURL)

	// Create controllers
	controllers := &router.Controllers{
		Catalog:      controller.NewCatalogController(repository.NewCatalogRepository()),
		SalesReport:  controller.NewSalesReportController(repository.NewSalesReportRepository(), reportService, pdfService),
		Transport:    controller.NewTransportController(repository.NewTransportRepository(), reportService, pdfService),
		TopClients:   controller.NewTopClientsController(repository.NewTopClientsRepository()),
		Schedule:     controller.NewScheduleController(repository.NewScheduleRepository()),
		Stock:        controller.NewStockController(repository.NewStockRepository()),
		Traceability: controller.NewTraceabilityController(repository.NewTraceabilityRepository()),
		Sale:         controller.NewSaleController(repository.NewSaleRepository()),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
