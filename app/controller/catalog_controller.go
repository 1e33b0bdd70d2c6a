package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"frigorifico-sanpedro/repository"
)

// CatalogController handles HTTP requests for the report catalog
type CatalogController struct {
	repository repository.CatalogRepositoryInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(repo repository.CatalogRepositoryInterface) *CatalogController {
	return &CatalogController{
		repository: repo,
	}
}

// ListCatalog handles GET /reportes/catalogo
// Example response:
// [
//   {
//     "reporteId": 1,
//     "nombre": "Ventas del día",
//     "categoria": "VENTAS",
//     "version": "1.2",
//     "vigenteDesde": "2025-01-01",
//     "vigenteHasta": null
//   }
// ]
func (c *CatalogController) ListCatalog(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListCatalog: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ListCatalog: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	entries, err := c.repository.ListActive(ctx)
	if err != nil {
		log.Printf("❌ ListCatalog: Error fetching catalog: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch catalog: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListCatalog: Successfully fetched %d catalog entries", len(entries))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		log.Printf("❌ ListCatalog: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
