package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"frigorifico-sanpedro/models"
	"frigorifico-sanpedro/repository"
	"frigorifico-sanpedro/service"
)

// SalesReportController handles HTTP requests for the daily sales report
type SalesReportController struct {
	repository    repository.SalesReportRepositoryInterface
	reportService *service.ReportService
	pdfService    *service.PDFService
}

// NewSalesReportController creates a new SalesReportController
func NewSalesReportController(
	repo repository.SalesReportRepositoryInterface,
	reportService *service.ReportService,
	pdfService *service.PDFService,
) *SalesReportController {
	return &SalesReportController{
		repository:    repo,
		reportService: reportService,
		pdfService:    pdfService,
	}
}

func salesDetailFilters(r *http.Request) models.SalesDetailFilters {
	q := r.URL.Query()
	return models.SalesDetailFilters{
		Date:     q.Get("fecha"),
		District: q.Get("sede"),
		Species:  q.Get("especie"),
		Client:   q.Get("cliente"),
	}
}

// Summary handles GET /reportes/ventas-dia/resumen
// Example response:
// {
//   "totalVentas": 125430.5,
//   "totalKilogramos": 8320,
//   "precioPromedioKg": 15.08
// }
func (c *SalesReportController) Summary(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Summary: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Summary: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	summary, err := c.repository.Summary(ctx)
	if err != nil {
		log.Printf("❌ Summary: Error fetching sales summary: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch sales summary: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Summary: Successfully fetched sales summary")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Printf("❌ Summary: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Detail handles GET /reportes/ventas-dia/detalle?fecha=&sede=&especie=&cliente=
func (c *SalesReportController) Detail(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Detail: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Detail: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	rows, err := c.repository.Detail(ctx, salesDetailFilters(r))
	if err != nil {
		log.Printf("❌ Detail: Error fetching sales detail: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch sales detail: %v", err), http.StatusInternalServerError)
		return
	}

	if rows == nil {
		rows = []models.SalesDetailRow{}
	}

	log.Printf("✅ Detail: Successfully fetched %d sales detail rows", len(rows))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		log.Printf("❌ Detail: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// DownloadCSV handles GET /reportes/ventas-dia/csv
func (c *SalesReportController) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DownloadCSV: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ DownloadCSV: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	rows, err := c.repository.Detail(ctx, salesDetailFilters(r))
	if err != nil {
		log.Printf("❌ DownloadCSV: Error fetching sales detail: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch sales detail: %v", err), http.StatusInternalServerError)
		return
	}

	csv := service.SalesDetailCSV(rows)

	log.Printf("✅ DownloadCSV: Successfully built CSV with %d rows", len(rows))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="reporte-ventas-dia.csv"`)
	if _, err := w.Write([]byte(csv)); err != nil {
		log.Printf("❌ DownloadCSV: Error writing response: %v", err)
	}
}

// Render handles GET /reportes/ventas-dia/render
// Serves the HTML the PDF pipeline prints
func (c *SalesReportController) Render(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Render: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Render: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	rows, err := c.repository.Detail(ctx, salesDetailFilters(r))
	if err != nil {
		log.Printf("❌ Render: Error fetching sales detail: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch sales detail: %v", err), http.StatusInternalServerError)
		return
	}

	html, err := c.reportService.RenderHTML(service.SalesDetailDocument(rows))
	if err != nil {
		log.Printf("❌ Render: Error rendering HTML: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render report: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Render: Successfully rendered sales report HTML")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("❌ Render: Error writing response: %v", err)
	}
}

// DownloadPDF handles GET /reportes/ventas-dia/pdf
func (c *SalesReportController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DownloadPDF: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ DownloadPDF: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	renderPath := "/reportes/ventas-dia/render"
	if r.URL.RawQuery != "" {
		renderPath += "?" + r.URL.RawQuery
	}

	ctx := context.Background()
	pdf, err := c.pdfService.Generate(ctx, renderPath)
	if err != nil {
		log.Printf("❌ DownloadPDF: Error generating PDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ DownloadPDF: Successfully generated PDF (%d bytes)", len(pdf))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="reporte-ventas-dia.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("❌ DownloadPDF: Error writing response: %v", err)
	}
}
