package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frigorifico-sanpedro/models"
)

func validScheduleRequest() *models.CreateScheduleRequest {
	reportID := int64(3)
	return &models.CreateScheduleRequest{
		ReportID:      &reportID,
		Name:          "Ventas diarias 6am",
		Expression:    "FREQ=DAILY;BYHOUR=6",
		ReferenceTime: "06:00",
		Timezone:      "America/Lima",
		ValidFrom:     "2025-01-01",
	}
}

func TestValidateCreateScheduleNormalizesReferenceTime(t *testing.T) {
	req := validScheduleRequest()

	require.NoError(t, ValidateCreateSchedule(req))
	assert.Equal(t, "06:00:00", req.ReferenceTime)
}

func TestValidateCreateScheduleKeepsFullReferenceTime(t *testing.T) {
	req := validScheduleRequest()
	req.ReferenceTime = "23:30:15"

	require.NoError(t, ValidateCreateSchedule(req))
	assert.Equal(t, "23:30:15", req.ReferenceTime)
}

func TestValidateCreateScheduleTrimsFields(t *testing.T) {
	req := validScheduleRequest()
	req.Name = "  Reporte nocturno  "
	req.Timezone = " America/Lima "

	require.NoError(t, ValidateCreateSchedule(req))
	assert.Equal(t, "Reporte nocturno", req.Name)
	assert.Equal(t, "America/Lima", req.Timezone)
}

func TestValidateCreateScheduleRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CreateScheduleRequest)
		message string
	}{
		{
			name:    "missing report id",
			mutate:  func(r *models.CreateScheduleRequest) { r.ReportID = nil },
			message: "reporteId es requerido y debe ser numerico",
		},
		{
			name:    "blank name",
			mutate:  func(r *models.CreateScheduleRequest) { r.Name = "   " },
			message: "nombre es requerido",
		},
		{
			name:    "blank expression",
			mutate:  func(r *models.CreateScheduleRequest) { r.Expression = "" },
			message: "expresion es requerida",
		},
		{
			name:    "blank reference time",
			mutate:  func(r *models.CreateScheduleRequest) { r.ReferenceTime = "" },
			message: "horaReferencia es requerida (HH:mm o HH:mm:ss)",
		},
		{
			name:    "malformed reference time",
			mutate:  func(r *models.CreateScheduleRequest) { r.ReferenceTime = "6am" },
			message: "horaReferencia debe tener formato HH:mm o HH:mm:ss",
		},
		{
			name:    "blank timezone",
			mutate:  func(r *models.CreateScheduleRequest) { r.Timezone = "" },
			message: "zonaHoraria es requerida (ej: America/Lima)",
		},
		{
			name:    "malformed valid-from",
			mutate:  func(r *models.CreateScheduleRequest) { r.ValidFrom = "01/01/2025" },
			message: "vigenteDesde es requerido (YYYY-MM-DD)",
		},
		{
			name:    "malformed valid-to",
			mutate:  func(r *models.CreateScheduleRequest) { r.ValidTo = "2025-13" },
			message: "vigenteHasta debe tener formato YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validScheduleRequest()
			tt.mutate(req)

			err := ValidateCreateSchedule(req)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateCreateScheduleAllowsEmptyValidTo(t *testing.T) {
	req := validScheduleRequest()
	req.ValidTo = ""

	assert.NoError(t, ValidateCreateSchedule(req))
}
