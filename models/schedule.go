package models

// ScheduleSummary represents the aggregate view of report schedules.
// SuccessRate30d is null when there were no executions in the window.
type ScheduleSummary struct {
	ActiveSchedules float64  `json:"totalProgramacionesActivas"`
	ExecutionsToday float64  `json:"totalEjecucionesHoy"`
	Successes30d    float64  `json:"exitos30d"`
	SuccessRate30d  *float64 `json:"tasaExito30d"`
}

// ScheduleListItem represents one active recurring-report definition with
// its execution stats
type ScheduleListItem struct {
	ScheduleID    int64   `json:"programacionId"`
	Name          string  `json:"nombre"`
	ReportID      *int64  `json:"reporteId"`
	Expression    string  `json:"expresion"`
	ReferenceTime string  `json:"horaReferencia"`
	Timezone      string  `json:"zonaHoraria"`
	ValidFrom     string  `json:"vigenteDesde"`
	ValidTo       *string `json:"vigenteHasta"`
	AutoDelivery  bool    `json:"entregaAutomatica"`
	LastRun       *string `json:"ultimaEjecucion"`
	NextRun       *string `json:"proximaEjecucion"`
	Successes     int64   `json:"exitos"`
	Failures      int64   `json:"fallos"`
}

// ScheduleExecution represents one historical run of a schedule
type ScheduleExecution struct {
	ExecutionID   int64   `json:"ejecucionId"`
	ReportID      *int64  `json:"reporteId"`
	ScheduleID    *int64  `json:"programacionId"`
	ScheduledAt   *string `json:"fechaProgramada"`
	StartedAt     *string `json:"inicio"`
	FinishedAt    *string `json:"fin"`
	Status        string  `json:"estado"`
	StatusMessage string  `json:"mensajeEstado"`
	Origin        string  `json:"origen"`
	RequestedBy   *int64  `json:"solicitadoPorUsuarioId"`
}

// ScheduleFilters holds the optional filters for the schedule report.
// Both arrive loosely typed; unparseable input means "no constraint".
type ScheduleFilters struct {
	ReportID   string
	ScheduleID string
}

// CreateScheduleRequest represents the body for creating a schedule
// Example:
// {
//   "reporteId": 3,
//   "nombre": "Ventas diarias 6am",
//   "expresion": "FREQ=DAILY;BYHOUR=6",
//   "horaReferencia": "06:00",
//   "zonaHoraria": "America/Lima",
//   "vigenteDesde": "2025-01-01",
//   "entregaAutomatica": true
// }
type CreateScheduleRequest struct {
	ReportID      *int64  `json:"reporteId"`
	Name          string  `json:"nombre"`
	Expression    string  `json:"expresion"`
	ReferenceTime string  `json:"horaReferencia"`
	Timezone      string  `json:"zonaHoraria"`
	ValidFrom     string  `json:"vigenteDesde"`
	ValidTo       string  `json:"vigenteHasta,omitempty"`
	AutoDelivery  *bool   `json:"entregaAutomatica,omitempty"`
	CreatedBy     *int64  `json:"creadoPorUsuarioId,omitempty"`
}

// CreateScheduleResponse represents the response after creating a schedule
type CreateScheduleResponse struct {
	ScheduleID int64 `json:"programacionId"`
}

// ScheduleStatusRequest represents the body for PATCH .../estado
type ScheduleStatusRequest struct {
	Active *bool `json:"activo"`
}

// ScheduleStatusResponse represents the result of a status update.
// Deactivating stamps ValidTo with the deactivation timestamp; the row is
// never deleted by this operation.
type ScheduleStatusResponse struct {
	ScheduleID int64   `json:"programacionId"`
	Active     bool    `json:"activo"`
	ValidTo    *string `json:"vigenteHasta"`
}

// DeleteScheduleResponse represents the result of a hard delete
type DeleteScheduleResponse struct {
	ScheduleID int64 `json:"programacionId"`
}
