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

// TopClientsController handles HTTP requests for the top clients report
type TopClientsController struct {
	repository repository.TopClientsRepositoryInterface
}

// NewTopClientsController creates a new TopClientsController
func NewTopClientsController(repo repository.TopClientsRepositoryInterface) *TopClientsController {
	return &TopClientsController{
		repository: repo,
	}
}

func topClientsFilters(r *http.Request) models.TopClientsFilters {
	q := r.URL.Query()
	return models.TopClientsFilters{
		Client:    q.Get("cliente"),
		MinTenure: q.Get("antiguedadMin"),
		District:  q.Get("distrito"),
	}
}

// Summary handles GET /reportes/top-clientes/resumen?cliente=&antiguedadMin=&distrito=
func (c *TopClientsController) Summary(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Summary: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Summary: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	summary, err := c.repository.Summary(ctx, topClientsFilters(r))
	if err != nil {
		log.Printf("❌ Summary: Error fetching top clients summary: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch top clients summary: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Summary: Successfully fetched top clients summary")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Printf("❌ Summary: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Detail handles GET /reportes/top-clientes/detalle
func (c *TopClientsController) Detail(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Detail: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Detail: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	ranking, err := c.repository.Detail(ctx, topClientsFilters(r))
	if err != nil {
		log.Printf("❌ Detail: Error fetching top clients detail: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch top clients detail: %v", err), http.StatusInternalServerError)
		return
	}

	if ranking == nil {
		ranking = []models.TopClientRanking{}
	}

	log.Printf("✅ Detail: Successfully fetched %d ranked clients", len(ranking))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ranking); err != nil {
		log.Printf("❌ Detail: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
