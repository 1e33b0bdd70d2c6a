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

// ScheduleController handles HTTP requests for report schedules
type ScheduleController struct {
	repository repository.ScheduleRepositoryInterface
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(repo repository.ScheduleRepositoryInterface) *ScheduleController {
	return &ScheduleController{
		repository: repo,
	}
}

func scheduleFilters(r *http.Request) models.ScheduleFilters {
	q := r.URL.Query()
	return models.ScheduleFilters{
		ReportID:   q.Get("reporteId"),
		ScheduleID: q.Get("programacionId"),
	}
}

// Summary handles GET /reportes/programacion/resumen?reporteId=&programacionId=
// Example response:
// {
//   "totalProgramacionesActivas": 4,
//   "totalEjecucionesHoy": 2,
//   "exitos30d": 55,
//   "tasaExito30d": 91.7
// }
func (c *ScheduleController) Summary(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Summary: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Summary: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	summary, err := c.repository.Summary(ctx, scheduleFilters(r))
	if err != nil {
		log.Printf("❌ Summary: Error fetching schedule summary: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch schedule summary: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Summary: Successfully fetched schedule summary")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Printf("❌ Summary: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// List handles GET /reportes/programacion/lista
func (c *ScheduleController) List(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 List: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ List: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	schedules, err := c.repository.List(ctx, scheduleFilters(r))
	if err != nil {
		log.Printf("❌ List: Error fetching schedules: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch schedules: %v", err), http.StatusInternalServerError)
		return
	}

	if schedules == nil {
		schedules = []models.ScheduleListItem{}
	}

	log.Printf("✅ List: Successfully fetched %d schedules", len(schedules))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(schedules); err != nil {
		log.Printf("❌ List: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Executions handles GET /reportes/programacion/ejecuciones
func (c *ScheduleController) Executions(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Executions: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ Executions: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	executions, err := c.repository.RecentExecutions(ctx, scheduleFilters(r))
	if err != nil {
		log.Printf("❌ Executions: Error fetching executions: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch executions: %v", err), http.StatusInternalServerError)
		return
	}

	if executions == nil {
		executions = []models.ScheduleExecution{}
	}

	log.Printf("✅ Executions: Successfully fetched %d executions", len(executions))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(executions); err != nil {
		log.Printf("❌ Executions: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Create handles POST /reportes/programacion
// Example request:
// {
//   "reporteId": 3,
//   "nombre": "Ventas diarias 6am",
//   "expresion": "FREQ=DAILY;BYHOUR=6",
//   "horaReferencia": "06:00",
//   "zonaHoraria": "America/Lima",
//   "vigenteDesde": "2025-01-01",
//   "entregaAutomatica": true
// }
func (c *ScheduleController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Create: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ Create: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Create: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	response, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ Create: Error creating schedule: %v", err)
		errMsg := err.Error()
		if strings.Contains(errMsg, "es requerid") ||
			strings.Contains(errMsg, "debe tener formato") ||
			strings.Contains(errMsg, "usuarios vigentes") {
			http.Error(w, errMsg, http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to create schedule: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Create: Successfully created schedule id=%d", response.ScheduleID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Create: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// HandleItem dispatches the per-schedule routes:
// PATCH  /reportes/programacion/{id}/estado
// DELETE /reportes/programacion/{id}
func (c *ScheduleController) HandleItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 HandleItem: Received %s request to %s", r.Method, r.URL.Path)

	path := strings.TrimPrefix(r.URL.Path, "/reportes/programacion/")
	if path == "" {
		http.Error(w, "programacion id parameter is required", http.StatusBadRequest)
		return
	}

	switch {
	case r.Method == http.MethodPatch && strings.HasSuffix(path, "/estado"):
		c.updateStatus(w, r, strings.TrimSuffix(path, "/estado"))
	case r.Method == http.MethodDelete && !strings.Contains(path, "/"):
		c.delete(w, r, path)
	default:
		log.Printf("❌ HandleItem: Method not allowed: %s %s", r.Method, r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *ScheduleController) updateStatus(w http.ResponseWriter, r *http.Request, idStr string) {
	scheduleID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Printf("❌ updateStatus: Invalid programacion id: %s", idStr)
		http.Error(w, "programacionId invalido", http.StatusBadRequest)
		return
	}

	var req models.ScheduleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ updateStatus: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Active == nil {
		log.Printf("❌ updateStatus: activo is required")
		http.Error(w, "activo es requerido", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	response, err := c.repository.UpdateStatus(ctx, scheduleID, *req.Active)
	if err != nil {
		log.Printf("❌ updateStatus: Error updating schedule %d: %v", scheduleID, err)
		if strings.Contains(err.Error(), "no encontrada") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update schedule status: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ updateStatus: Successfully updated schedule %d", scheduleID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ updateStatus: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (c *ScheduleController) delete(w http.ResponseWriter, r *http.Request, idStr string) {
	scheduleID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Printf("❌ delete: Invalid programacion id: %s", idStr)
		http.Error(w, "programacionId invalido", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	response, err := c.repository.Delete(ctx, scheduleID)
	if err != nil {
		log.Printf("❌ delete: Error deleting schedule %d: %v", scheduleID, err)
		if strings.Contains(err.Error(), "no encontrada") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete schedule: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ delete: Successfully deleted schedule %d", scheduleID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ delete: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
