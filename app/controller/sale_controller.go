package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"frigorifico-sanpedro/models"
	"frigorifico-sanpedro/repository"
)

// SaleController handles HTTP requests for document-store sales capture
type SaleController struct {
	repository repository.SaleRepositoryInterface
}

// NewSaleController creates a new SaleController
func NewSaleController(repo repository.SaleRepositoryInterface) *SaleController {
	return &SaleController{
		repository: repo,
	}
}

// HandleSales dispatches /ventas: POST captures a sale, GET lists them
func (c *SaleController) HandleSales(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.create(w, r)
	case http.MethodGet:
		c.list(w, r)
	default:
		log.Printf("❌ HandleSales: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// create handles POST /ventas
// Example request:
// {
//   "documento": "20481234567",
//   "items": [
//     { "productoId": 3, "nombre": "Media res", "cantidad": 2, "precioUnitario": 890.5, "subtotal": 1781 }
//   ],
//   "total": 1781
// }
func (c *SaleController) create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 create: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ create: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Document) == "" {
		log.Printf("❌ create: documento is required")
		http.Error(w, "documento es requerido", http.StatusBadRequest)
		return
	}

	if len(req.Items) == 0 {
		log.Printf("❌ create: items is required")
		http.Error(w, "items es requerido", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	sale, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ create: Error capturing sale: %v", err)
		if strings.Contains(err.Error(), "Cliente no encontrado") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to capture sale: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ create: Successfully captured sale %s", sale.Key)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(sale); err != nil {
		log.Printf("❌ create: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// list handles GET /ventas
func (c *SaleController) list(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 list: Received %s request to %s", r.Method, r.URL.Path)

	ctx := context.Background()
	sales, err := c.repository.List(ctx)
	if err != nil {
		log.Printf("❌ list: Error fetching sales: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch sales: %v", err), http.StatusInternalServerError)
		return
	}

	if sales == nil {
		sales = []models.SaleDocument{}
	}

	log.Printf("✅ list: Successfully fetched %d sales", len(sales))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sales); err != nil {
		log.Printf("❌ list: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// HandleSaleItem dispatches the per-sale routes:
// GET   /ventas/cliente/{id}
// PATCH /ventas/{key}/estado
func (c *SaleController) HandleSaleItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 HandleSaleItem: Received %s request to %s", r.Method, r.URL.Path)

	path := strings.TrimPrefix(r.URL.Path, "/ventas/")
	if path == "" {
		http.Error(w, "invalid path format", http.StatusBadRequest)
		return
	}

	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(path, "cliente/"):
		c.listByClient(w, r, strings.TrimPrefix(path, "cliente/"))
	case r.Method == http.MethodPatch && strings.HasSuffix(path, "/estado"):
		c.updateStatus(w, r, strings.TrimSuffix(path, "/estado"))
	default:
		log.Printf("❌ HandleSaleItem: Method not allowed: %s %s", r.Method, r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *SaleController) listByClient(w http.ResponseWriter, r *http.Request, idStr string) {
	clientID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Printf("❌ listByClient: Invalid client id: %s", idStr)
		http.Error(w, "invalid client id parameter", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	sales, err := c.repository.ListByClient(ctx, clientID)
	if err != nil {
		log.Printf("❌ listByClient: Error fetching sales for client %d: %v", clientID, err)
		http.Error(w, fmt.Sprintf("Failed to fetch sales: %v", err), http.StatusInternalServerError)
		return
	}

	if sales == nil {
		sales = []models.SaleDocument{}
	}

	log.Printf("✅ listByClient: Successfully fetched %d sales for client %d", len(sales), clientID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sales); err != nil {
		log.Printf("❌ listByClient: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (c *SaleController) updateStatus(w http.ResponseWriter, r *http.Request, key string) {
	if key == "" || strings.Contains(key, "/") {
		http.Error(w, "invalid sale key parameter", http.StatusBadRequest)
		return
	}

	var req models.SaleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ updateStatus: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Status) == "" {
		log.Printf("❌ updateStatus: estado is required")
		http.Error(w, "estado es requerido", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	response, err := c.repository.UpdateStatus(ctx, key, req.Status)
	if err != nil {
		log.Printf("❌ updateStatus: Error updating sale %s: %v", key, err)
		if strings.Contains(err.Error(), "no encontrada") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update sale status: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ updateStatus: Successfully updated sale %s", key)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ updateStatus: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
