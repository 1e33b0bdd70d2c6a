package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"frigorifico-sanpedro/models"
	"frigorifico-sanpedro/repository"
)

// StockController handles HTTP requests for the cold-storage stock report
type StockController struct {
	repository repository.StockRepositoryInterface
}

// NewStockController creates a new StockController
func NewStockController(repo repository.StockRepositoryInterface) *StockController {
	return &StockController{
		repository: repo,
	}
}

// Current handles GET /reportes/stock-actual?camara=&especie=
// Example response:
// [
//   {
//     "camara": "Cámara 1",
//     "especie": "VACUNO",
//     "piezas": 18,
//     "kilogramos": 4230.5,
//     "estado": "OPERATIVA"
//   }
// ]
func (c *StockController) Current(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Current: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Current: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	filters := models.StockFilters{
		Chamber: q.Get("camara"),
		Species: q.Get("especie"),
	}

	ctx := context.Background()
	rows, err := c.repository.Current(ctx, filters)
	if err != nil {
		log.Printf("❌ Current: Error fetching stock: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch stock: %v", err), http.StatusInternalServerError)
		return
	}

	if rows == nil {
		rows = []models.StockRow{}
	}

	log.Printf("✅ Current: Successfully fetched %d stock rows", len(rows))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		log.Printf("❌ Current: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
