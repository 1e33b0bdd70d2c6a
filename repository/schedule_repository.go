package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"regexp"
	"strings"

	"frigorifico-sanpedro/db"
	"frigorifico-sanpedro/models"
	"frigorifico-sanpedro/sqlfilter"
)

var (
	timeOfDayPattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
	datePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ScheduleRepository handles database operations for report schedules
type ScheduleRepository struct{}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

// Ensure ScheduleRepository implements ScheduleRepositoryInterface
var _ ScheduleRepositoryInterface = (*ScheduleRepository)(nil)

func scheduleFilterArgs(filters models.ScheduleFilters) []interface{} {
	return []interface{}{
		sqlfilter.IntOrNil(filters.ReportID),
		sqlfilter.IntOrNil(filters.ScheduleID),
	}
}

// Summary retrieves active schedule counts and the 30-day success rate.
// The rate stays NULL when the window had no executions at all.
func (r *ScheduleRepository) Summary(ctx context.Context, filters models.ScheduleFilters) (*models.ScheduleSummary, error) {
	log.Printf("📦 Summary: Fetching schedule summary (reporteId=%q, programacionId=%q)",
		filters.ReportID, filters.ScheduleID)

	query := `
		WITH prog_activas AS (
			SELECT COUNT(*) AS total_programaciones_activas
			FROM reportes.programacion p
			WHERE (p.vigente_hasta IS NULL OR p.vigente_hasta >= CURRENT_DATE)
			  AND ( $1::int IS NULL OR p.reporte_id = $1 )
			  AND ( $2::int IS NULL OR p.programacion_id = $2 )
		),
		ejec_hoy AS (
			SELECT COUNT(*) AS total_ejecuciones_hoy
			FROM reportes.ejecucion e
			WHERE e.inicio::date = CURRENT_DATE
			  AND ( $1::int IS NULL OR e.reporte_id = $1 )
			  AND ( $2::int IS NULL OR e.programacion_id = $2 )
		),
		exitos_30d AS (
			SELECT
				COUNT(*) FILTER ( WHERE e.estado::text = 'EXITOSA' ) AS exitos_30d,
				COUNT(*) AS total_30d
			FROM reportes.ejecucion e
			WHERE e.inicio::date >= CURRENT_DATE - INTERVAL '30 days'
			  AND ( $1::int IS NULL OR e.reporte_id = $1 )
			  AND ( $2::int IS NULL OR e.programacion_id = $2 )
		)
		SELECT
			pa.total_programaciones_activas,
			eh.total_ejecuciones_hoy,
			ex.exitos_30d,
			CASE
				WHEN ex.total_30d = 0 THEN NULL
				ELSE ROUND(100.0 * ex.exitos_30d / ex.total_30d, 1)
			END AS tasa_exito_30d
		FROM prog_activas pa
		CROSS JOIN ejec_hoy  eh
		CROSS JOIN exitos_30d ex
	`

	var summary models.ScheduleSummary
	var rate sql.NullFloat64

	err := db.DB.QueryRowContext(ctx, query, scheduleFilterArgs(filters)...).Scan(
		&summary.ActiveSchedules,
		&summary.ExecutionsToday,
		&summary.Successes30d,
		&rate,
	)
	if err != nil {
		log.Printf("❌ Summary: Error fetching schedule summary: %v", err)
		return nil, fmt.Errorf("failed to fetch schedule summary: %w", err)
	}

	if rate.Valid {
		summary.SuccessRate30d = &rate.Float64
	}

	log.Printf("✅ Summary: Successfully fetched schedule summary")
	return &summary, nil
}

// List retrieves the active schedules with per-schedule execution stats
func (r *ScheduleRepository) List(ctx context.Context, filters models.ScheduleFilters) ([]models.ScheduleListItem, error) {
	log.Printf("📦 List: Fetching schedules (reporteId=%q, programacionId=%q)",
		filters.ReportID, filters.ScheduleID)

	query := `
		SELECT
			p.programacion_id,
			p.nombre_programacion,
			p.reporte_id,
			p.expresion_programacion,
			p.hora_referencia::text,
			p.zona_horaria,
			p.vigente_desde::text,
			p.vigente_hasta::text,
			p.entrega_automatica,
			MAX(e.inicio)::text AS ultima_ejecucion,
			(MIN(e.fecha_programada) FILTER (WHERE e.fecha_programada > NOW()))::text AS proxima_ejecucion,
			COUNT(*) FILTER (WHERE e.estado::text = 'EXITOSA') AS exitos,
			COUNT(*) FILTER (WHERE e.estado::text IS NOT NULL AND e.estado::text <> 'EXITOSA') AS fallos
		FROM reportes.programacion p
		LEFT JOIN reportes.ejecucion e
		  ON e.programacion_id = p.programacion_id
		WHERE (p.vigente_hasta IS NULL OR p.vigente_hasta >= CURRENT_DATE)
		  AND ( $1::int IS NULL OR p.reporte_id = $1 )
		  AND ( $2::int IS NULL OR p.programacion_id = $2 )
		GROUP BY
			p.programacion_id,
			p.nombre_programacion,
			p.reporte_id,
			p.expresion_programacion,
			p.hora_referencia,
			p.zona_horaria,
			p.vigente_desde,
			p.vigente_hasta,
			p.entrega_automatica
		ORDER BY p.nombre_programacion
	`

	rows, err := db.DB.QueryContext(ctx, query, scheduleFilterArgs(filters)...)
	if err != nil {
		log.Printf("❌ List: Error fetching schedules: %v", err)
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer rows.Close()

	var result []models.ScheduleListItem

	for rows.Next() {
		var item models.ScheduleListItem
		var reportID sql.NullInt64
		var validTo, lastRun, nextRun sql.NullString

		if err := rows.Scan(
			&item.ScheduleID,
			&item.Name,
			&reportID,
			&item.Expression,
			&item.ReferenceTime,
			&item.Timezone,
			&item.ValidFrom,
			&validTo,
			&item.AutoDelivery,
			&lastRun,
			&nextRun,
			&item.Successes,
			&item.Failures,
		); err != nil {
			log.Printf("❌ List: Error scanning schedule: %v", err)
			continue
		}

		if reportID.Valid {
			item.ReportID = &reportID.Int64
		}
		if validTo.Valid {
			item.ValidTo = &validTo.String
		}
		if lastRun.Valid {
			item.LastRun = &lastRun.String
		}
		if nextRun.Valid {
			item.NextRun = &nextRun.String
		}

		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ List: Error iterating schedules: %v", err)
		return nil, fmt.Errorf("failed to iterate schedules: %w", err)
	}

	log.Printf("✅ List: Successfully fetched %d schedules", len(result))
	return result, nil
}

// RecentExecutions retrieves the 20 most recent schedule runs
func (r *ScheduleRepository) RecentExecutions(ctx context.Context, filters models.ScheduleFilters) ([]models.ScheduleExecution, error) {
	log.Printf("📦 RecentExecutions: Fetching executions (reporteId=%q, programacionId=%q)",
		filters.ReportID, filters.ScheduleID)

	query := `
		SELECT
			e.ejecucion_id,
			e.reporte_id,
			e.programacion_id,
			e.fecha_programada::text,
			e.inicio::text,
			e.fin::text,
			e.estado::text AS estado,
			e.mensaje_estado,
			e.origen::text AS origen,
			e.solicitado_por_usuario_id
		FROM reportes.ejecucion e
		WHERE ( $1::int IS NULL OR e.reporte_id = $1 )
		  AND ( $2::int IS NULL OR e.programacion_id = $2 )
		ORDER BY COALESCE(e.inicio, e.fecha_programada) DESC NULLS LAST
		LIMIT 20
	`

	rows, err := db.DB.QueryContext(ctx, query, scheduleFilterArgs(filters)...)
	if err != nil {
		log.Printf("❌ RecentExecutions: Error fetching executions: %v", err)
		return nil, fmt.Errorf("failed to fetch executions: %w", err)
	}
	defer rows.Close()

	var result []models.ScheduleExecution

	for rows.Next() {
		var exec models.ScheduleExecution
		var reportID, scheduleID, requestedBy sql.NullInt64
		var scheduledAt, startedAt, finishedAt, status, message, origin sql.NullString

		if err := rows.Scan(
			&exec.ExecutionID,
			&reportID,
			&scheduleID,
			&scheduledAt,
			&startedAt,
			&finishedAt,
			&status,
			&message,
			&origin,
			&requestedBy,
		); err != nil {
			log.Printf("❌ RecentExecutions: Error scanning execution: %v", err)
			continue
		}

		if reportID.Valid {
			exec.ReportID = &reportID.Int64
		}
		if scheduleID.Valid {
			exec.ScheduleID = &scheduleID.Int64
		}
		if requestedBy.Valid {
			exec.RequestedBy = &requestedBy.Int64
		}
		if scheduledAt.Valid {
			exec.ScheduledAt = &scheduledAt.String
		}
		if startedAt.Valid {
			exec.StartedAt = &startedAt.String
		}
		if finishedAt.Valid {
			exec.FinishedAt = &finishedAt.String
		}
		exec.Status = status.String
		exec.StatusMessage = message.String
		exec.Origin = origin.String

		result = append(result, exec)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ RecentExecutions: Error iterating executions: %v", err)
		return nil, fmt.Errorf("failed to iterate executions: %w", err)
	}

	log.Printf("✅ RecentExecutions: Successfully fetched %d executions", len(result))
	return result, nil
}

// ValidateCreateSchedule normalizes the request in place and returns a
// field-naming error for the first invalid field. A five-character
// reference time gains its seconds suffix.
func ValidateCreateSchedule(req *models.CreateScheduleRequest) error {
	if req.ReportID == nil {
		return fmt.Errorf("reporteId es requerido y debe ser numerico")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fmt.Errorf("nombre es requerido")
	}

	req.Expression = strings.TrimSpace(req.Expression)
	if req.Expression == "" {
		return fmt.Errorf("expresion es requerida")
	}

	req.ReferenceTime = strings.TrimSpace(req.ReferenceTime)
	if req.ReferenceTime == "" {
		return fmt.Errorf("horaReferencia es requerida (HH:mm o HH:mm:ss)")
	}
	if len(req.ReferenceTime) == 5 {
		req.ReferenceTime += ":00"
	}
	if !timeOfDayPattern.MatchString(req.ReferenceTime) {
		return fmt.Errorf("horaReferencia debe tener formato HH:mm o HH:mm:ss")
	}

	req.Timezone = strings.TrimSpace(req.Timezone)
	if req.Timezone == "" {
		return fmt.Errorf("zonaHoraria es requerida (ej: America/Lima)")
	}

	req.ValidFrom = strings.TrimSpace(req.ValidFrom)
	if !datePattern.MatchString(req.ValidFrom) {
		return fmt.Errorf("vigenteDesde es requerido (YYYY-MM-DD)")
	}

	req.ValidTo = strings.TrimSpace(req.ValidTo)
	if req.ValidTo != "" && !datePattern.MatchString(req.ValidTo) {
		return fmt.Errorf("vigenteHasta debe tener formato YYYY-MM-DD")
	}

	return nil
}

// resolveCreatorID falls back to the lowest active user when the request
// did not name a creator
func resolveCreatorID(ctx context.Context, preferred *int64) (int64, error) {
	if preferred != nil && *preferred > 0 {
		return *preferred, nil
	}

	var userID int64
	err := db.DB.QueryRowContext(ctx, `
		SELECT usuario_id
		FROM reportes.usuarios
		WHERE estado = 'VIGENTE'
		ORDER BY usuario_id
		LIMIT 1
	`).Scan(&userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("No hay usuarios vigentes para asignar como creador de la programacion")
		}
		return 0, fmt.Errorf("failed to resolve schedule creator: %w", err)
	}

	return userID, nil
}

// Create validates and inserts a new schedule
func (r *ScheduleRepository) Create(ctx context.Context, req *models.CreateScheduleRequest) (*models.CreateScheduleResponse, error) {
	log.Printf("📦 Create: Creating schedule %q", req.Name)

	if err := ValidateCreateSchedule(req); err != nil {
		log.Printf("⚠️ Create: Invalid schedule request: %v", err)
		return nil, err
	}

	creator, err := resolveCreatorID(ctx, req.CreatedBy)
	if err != nil {
		log.Printf("❌ Create: %v", err)
		return nil, err
	}

	autoDelivery := true
	if req.AutoDelivery != nil {
		autoDelivery = *req.AutoDelivery
	}

	var validTo interface{}
	if req.ValidTo != "" {
		validTo = req.ValidTo
	}

	query := `
		INSERT INTO reportes.programacion (
			reporte_id,
			nombre_programacion,
			expresion_programacion,
			hora_referencia,
			zona_horaria,
			vigente_desde,
			vigente_hasta,
			entrega_automatica,
			creado_por_usuario_id,
			fecha_creacion
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING programacion_id
	`

	var scheduleID int64
	err = db.DB.QueryRowContext(ctx, query,
		*req.ReportID,
		req.Name,
		req.Expression,
		req.ReferenceTime,
		req.Timezone,
		req.ValidFrom,
		validTo,
		autoDelivery,
		creator,
	).Scan(&scheduleID)
	if err != nil {
		log.Printf("❌ Create: Error creating schedule: %v", err)
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	log.Printf("✅ Create: Successfully created schedule with ID %d", scheduleID)
	return &models.CreateScheduleResponse{ScheduleID: scheduleID}, nil
}

// UpdateStatus activates or deactivates a schedule. Deactivating stamps
// vigente_hasta with the current timestamp; activating clears it.
func (r *ScheduleRepository) UpdateStatus(ctx context.Context, scheduleID int64, active bool) (*models.ScheduleStatusResponse, error) {
	log.Printf("📦 UpdateStatus: Setting schedule %d active=%v", scheduleID, active)

	query := `
		UPDATE reportes.programacion
		SET vigente_hasta = CASE WHEN $2 THEN NULL ELSE NOW() END
		WHERE programacion_id = $1
		RETURNING programacion_id, vigente_hasta::text
	`

	var id int64
	var validTo sql.NullString
	err := db.DB.QueryRowContext(ctx, query, scheduleID, active).Scan(&id, &validTo)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("⚠️ UpdateStatus: Schedule %d not found", scheduleID)
			return nil, fmt.Errorf("Programacion no encontrada")
		}
		log.Printf("❌ UpdateStatus: Error updating schedule %d: %v", scheduleID, err)
		return nil, fmt.Errorf("failed to update schedule status: %w", err)
	}

	response := &models.ScheduleStatusResponse{
		ScheduleID: id,
		Active:     active,
	}
	if validTo.Valid {
		response.ValidTo = &validTo.String
	}

	log.Printf("✅ UpdateStatus: Successfully updated schedule %d", id)
	return response, nil
}

// Delete removes a schedule permanently
func (r *ScheduleRepository) Delete(ctx context.Context, scheduleID int64) (*models.DeleteScheduleResponse, error) {
	log.Printf("📦 Delete: Deleting schedule %d", scheduleID)

	var id int64
	err := db.DB.QueryRowContext(ctx, `
		DELETE FROM reportes.programacion
		WHERE programacion_id = $1
		RETURNING programacion_id
	`, scheduleID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("⚠️ Delete: Schedule %d not found", scheduleID)
			return nil, fmt.Errorf("Programacion no encontrada")
		}
		log.Printf("❌ Delete: Error deleting schedule %d: %v", scheduleID, err)
		return nil, fmt.Errorf("failed to delete schedule: %w", err)
	}

	log.Printf("✅ Delete: Successfully deleted schedule %d", id)
	return &models.DeleteScheduleResponse{ScheduleID: id}, nil
}
