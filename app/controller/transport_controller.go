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
	"frigorifico-sanpedro/sqlfilter"
)

// TransportController handles HTTP requests for the transport report
type TransportController struct {
	repository    repository.TransportRepositoryInterface
	reportService *service.ReportService
	pdfService    *service.PDFService
}

// NewTransportController creates a new TransportController
func NewTransportController(
	repo repository.TransportRepositoryInterface,
	reportService *service.ReportService,
	pdfService *service.PDFService,
) *TransportController {
	return &TransportController{
		repository:    repo,
		reportService: reportService,
		pdfService:    pdfService,
	}
}

func transportFilters(r *http.Request) models.TransportFilters {
	q := r.URL.Query()
	return models.TransportFilters{
		DateFrom: q.Get("fechaInicio"),
		DateTo:   q.Get("fechaFin"),
		PaidOnly: sqlfilter.IsTrue(q.Get("soloPagados")),
	}
}

// Summary handles GET /reportes/transporte/resumen?fechaInicio=&fechaFin=&soloPagados=
// Example response:
// {
//   "totalViajes": 42,
//   "tiempoPromedioMin": 84.3,
//   "conRetraso": 6,
//   "porcentajeRetrasos": 14.3,
//   "enTransito": 3
// }
func (c *TransportController) Summary(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Summary: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Summary: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	summary, err := c.repository.Summary(ctx, transportFilters(r))
	if err != nil {
		log.Printf("❌ Summary: Error fetching transport summary: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch transport summary: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Summary: Successfully fetched transport summary")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Printf("❌ Summary: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Detail handles GET /reportes/transporte/detalle
func (c *TransportController) Detail(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Detail: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Detail: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	trips, err := c.repository.Detail(ctx, transportFilters(r))
	if err != nil {
		log.Printf("❌ Detail: Error fetching transport detail: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch transport detail: %v", err), http.StatusInternalServerError)
		return
	}

	if trips == nil {
		trips = []models.TransportTripDetail{}
	}

	log.Printf("✅ Detail: Successfully fetched %d trips", len(trips))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(trips); err != nil {
		log.Printf("❌ Detail: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// DownloadCSV handles GET /reportes/transporte/detalle/csv
func (c *TransportController) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DownloadCSV: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ DownloadCSV: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	trips, err := c.repository.Detail(ctx, transportFilters(r))
	if err != nil {
		log.Printf("❌ DownloadCSV: Error fetching transport detail: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch transport detail: %v", err), http.StatusInternalServerError)
		return
	}

	csv := service.TransportDetailCSV(trips)

	log.Printf("✅ DownloadCSV: Successfully built CSV with %d rows", len(trips))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="reporte-transporte.csv"`)
	if _, err := w.Write([]byte(csv)); err != nil {
		log.Printf("❌ DownloadCSV: Error writing response: %v", err)
	}
}

// Render handles GET /reportes/transporte/render
// Serves the HTML the PDF pipeline prints
func (c *TransportController) Render(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Render: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Render: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	trips, err := c.repository.Detail(ctx, transportFilters(r))
	if err != nil {
		log.Printf("❌ Render: Error fetching transport detail: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch transport detail: %v", err), http.StatusInternalServerError)
		return
	}

	html, err := c.reportService.RenderHTML(service.TransportDetailDocument(trips))
	if err != nil {
		log.Printf("❌ Render: Error rendering HTML: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render report: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Render: Successfully rendered transport report HTML")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("❌ Render: Error writing response: %v", err)
	}
}

// DownloadPDF handles GET /reportes/transporte/detalle/pdf
func (c *TransportController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DownloadPDF: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ DownloadPDF: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	renderPath := "/reportes/transporte/render"
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
	w.Header().Set("Content-Disposition", `attachment; filename="reporte-transporte.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("❌ DownloadPDF: Error writing response: %v", err)
	}
}
