package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"frigorifico-sanpedro/models"
	"frigorifico-sanpedro/repository"
	"frigorifico-sanpedro/utils"
)

// TraceabilityController handles HTTP requests for chain-of-custody lookups
type TraceabilityController struct {
	repository repository.TraceabilityRepositoryInterface
}

// NewTraceabilityController creates a new TraceabilityController
func NewTraceabilityController(repo repository.TraceabilityRepositoryInterface) *TraceabilityController {
	return &TraceabilityController{
		repository: repo,
	}
}

// resolveOrderID extracts the order id from either the pedidoId or the
// codigo query parameter (piece codes carry the order id as their numeric
// suffix)
func resolveOrderID(r *http.Request) (int64, bool) {
	q := r.URL.Query()

	if idStr := q.Get("pedidoId"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			return 0, false
		}
		return id, true
	}

	if code := q.Get("codigo"); code != "" {
		return utils.ParsePieceCode(code)
	}

	return 0, false
}

// Piece handles GET /reportes/trazabilidad/pieza?codigo= (or ?pedidoId=)
// Example response:
// {
//   "codigo": "PZ-2025-000042",
//   "especie": "VACUNO",
//   "pesoFinalKg": 254.3,
//   "fechaBeneficio": "2025-08-12",
//   "horaBeneficio": "05:40:00",
//   "camara": "Cámara 2",
//   "comisionado": "Luis Quispe",
//   "cliente": "Comercial Don Pedro",
//   "estadoReclamo": "SIN_RECLAMOS"
// }
func (c *TraceabilityController) Piece(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Piece: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Piece: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orderID, ok := resolveOrderID(r)
	if !ok {
		log.Printf("❌ Piece: Missing or invalid codigo/pedidoId")
		http.Error(w, "codigo o pedidoId es requerido", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	piece, err := c.repository.Piece(ctx, orderID)
	if err != nil {
		log.Printf("❌ Piece: Error fetching traceability: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch piece traceability: %v", err), http.StatusInternalServerError)
		return
	}

	if piece == nil {
		log.Printf("⚠️ Piece: No traceability record for order %d", orderID)
		http.Error(w, "Pieza no encontrada", http.StatusNotFound)
		return
	}

	log.Printf("✅ Piece: Successfully fetched traceability for order %d", orderID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(piece); err != nil {
		log.Printf("❌ Piece: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// AllPieces handles GET /reportes/trazabilidad/piezas
func (c *TraceabilityController) AllPieces(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AllPieces: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ AllPieces: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	pieces, err := c.repository.AllPieces(ctx)
	if err != nil {
		log.Printf("❌ AllPieces: Error fetching pieces: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch pieces: %v", err), http.StatusInternalServerError)
		return
	}

	if pieces == nil {
		pieces = []models.TraceabilityPiece{}
	}

	log.Printf("✅ AllPieces: Successfully fetched %d pieces", len(pieces))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pieces); err != nil {
		log.Printf("❌ AllPieces: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Complaints handles GET /reportes/trazabilidad/reclamos?codigo= (or ?pedidoId=)
func (c *TraceabilityController) Complaints(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Complaints: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Complaints: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orderID, ok := resolveOrderID(r)
	if !ok {
		log.Printf("❌ Complaints: Missing or invalid codigo/pedidoId")
		http.Error(w, "codigo o pedidoId es requerido", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	complaints, err := c.repository.Complaints(ctx, orderID)
	if err != nil {
		log.Printf("❌ Complaints: Error fetching complaints: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch complaints: %v", err), http.StatusInternalServerError)
		return
	}

	if complaints == nil {
		complaints = []models.Complaint{}
	}

	log.Printf("✅ Complaints: Successfully fetched %d complaints for order %d", len(complaints), orderID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(complaints); err != nil {
		log.Printf("❌ Complaints: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// AllComplaints handles GET /reportes/trazabilidad/reclamos/todos
func (c *TraceabilityController) AllComplaints(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AllComplaints: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ AllComplaints: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	complaints, err := c.repository.AllComplaints(ctx)
	if err != nil {
		log.Printf("❌ AllComplaints: Error fetching complaints: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch complaints: %v", err), http.StatusInternalServerError)
		return
	}

	if complaints == nil {
		complaints = []models.OrderComplaint{}
	}

	log.Printf("✅ AllComplaints: Successfully fetched %d complaints", len(complaints))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(complaints); err != nil {
		log.Printf("❌ AllComplaints: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
