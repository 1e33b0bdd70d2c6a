package router

import (
	"net/http"

	"frigorifico-sanpedro/app/controller"
)

type Controllers struct {
	Catalog      *controller.CatalogController
	SalesReport  *controller.SalesReportController
	Transport    *controller.TransportController
	TopClients   *controller.TopClientsController
	Schedule     *controller.ScheduleController
	Stock        *controller.StockController
	Traceability *controller.TraceabilityController
	Sale         *controller.SaleController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Report catalog
	http.HandleFunc("/reportes/catalogo", controllers.Catalog.ListCatalog)

	// Daily sales report
	http.HandleFunc("/reportes/ventas-dia/resumen", controllers.SalesReport.Summary)
	http.HandleFunc("/reportes/ventas-dia/detalle", controllers.SalesReport.Detail)
	http.HandleFunc("/reportes/ventas-dia/csv", controllers.SalesReport.DownloadCSV)
	http.HandleFunc("/reportes/ventas-dia/pdf", controllers.SalesReport.DownloadPDF)
	http.HandleFunc("/reportes/ventas-dia/render", controllers.SalesReport.Render)

	// Transport report
	http.HandleFunc("/reportes/transporte/resumen", controllers.Transport.Summary)
	http.HandleFunc("/reportes/transporte/detalle", controllers.Transport.Detail)
	http.HandleFunc("/reportes/transporte/detalle/csv", controllers.Transport.DownloadCSV)
	http.HandleFunc("/reportes/transporte/detalle/pdf", controllers.Transport.DownloadPDF)
	http.HandleFunc("/reportes/transporte/render", controllers.Transport.Render)

	// Top clients report
	http.HandleFunc("/reportes/top-clientes/resumen", controllers.TopClients.Summary)
	http.HandleFunc("/reportes/top-clientes/detalle", controllers.TopClients.Detail)

	// Schedules
	http.HandleFunc("/reportes/programacion/resumen", controllers.Schedule.Summary)
	http.HandleFunc("/reportes/programacion/lista", controllers.Schedule.List)
	http.HandleFunc("/reportes/programacion/ejecuciones", controllers.Schedule.Executions)
	http.HandleFunc("/reportes/programacion", controllers.Schedule.Create)

	// PATCH /reportes/programacion/:id/estado and DELETE /reportes/programacion/:id
	http.HandleFunc("/reportes/programacion/", controllers.Schedule.HandleItem)

	// Cold-storage stock
	http.HandleFunc("/reportes/stock-actual", controllers.Stock.Current)

	// Traceability
	http.HandleFunc("/reportes/trazabilidad/pieza", controllers.Traceability.Piece)
	http.HandleFunc("/reportes/trazabilidad/piezas", controllers.Traceability.AllPieces)
	http.HandleFunc("/reportes/trazabilidad/reclamos", controllers.Traceability.Complaints)
	http.HandleFunc("/reportes/trazabilidad/reclamos/todos", controllers.Traceability.AllComplaints)

	// Sales capture (document store)
	http.HandleFunc("/ventas", controllers.Sale.HandleSales)

	// GET /ventas/cliente/:id and PATCH /ventas/:key/estado
	http.HandleFunc("/ventas/", controllers.Sale.HandleSaleItem)
}
