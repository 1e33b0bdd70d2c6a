package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frigorifico-sanpedro/models"
	"frigorifico-sanpedro/repository"
)

type stubScheduleRepository struct {
	lastFilters  models.ScheduleFilters
	lastStatusID int64
	lastActive   bool
	deleted      []int64
	notFound     bool
}

func (s *stubScheduleRepository) Summary(ctx context.Context, filters models.ScheduleFilters) (*models.ScheduleSummary, error) {
	s.lastFilters = filters
	return &models.ScheduleSummary{ActiveSchedules: 4}, nil
}

func (s *stubScheduleRepository) List(ctx context.Context, filters models.ScheduleFilters) ([]models.ScheduleListItem, error) {
	s.lastFilters = filters
	return nil, nil
}

func (s *stubScheduleRepository) RecentExecutions(ctx context.Context, filters models.ScheduleFilters) ([]models.ScheduleExecution, error) {
	s.lastFilters = filters
	return nil, nil
}

func (s *stubScheduleRepository) Create(ctx context.Context, req *models.CreateScheduleRequest) (*models.CreateScheduleResponse, error) {
	if err := repository.ValidateCreateSchedule(req); err != nil {
		return nil, err
	}
	return &models.CreateScheduleResponse{ScheduleID: 7}, nil
}

func (s *stubScheduleRepository) UpdateStatus(ctx context.Context, scheduleID int64, active bool) (*models.ScheduleStatusResponse, error) {
	if s.notFound {
		return nil, fmt.Errorf("Programacion no encontrada")
	}
	s.lastStatusID = scheduleID
	s.lastActive = active
	return &models.ScheduleStatusResponse{ScheduleID: scheduleID, Active: active}, nil
}

func (s *stubScheduleRepository) Delete(ctx context.Context, scheduleID int64) (*models.DeleteScheduleResponse, error) {
	if s.notFound {
		return nil, fmt.Errorf("Programacion no encontrada")
	}
	s.deleted = append(s.deleted, scheduleID)
	return &models.DeleteScheduleResponse{ScheduleID: scheduleID}, nil
}

func TestScheduleSummaryPassesFiltersThrough(t *testing.T) {
	repo := &stubScheduleRepository{}
	ctrl := NewScheduleController(repo)

	req := httptest.NewRequest("GET", "/reportes/programacion/resumen?reporteId=3&programacionId=9", nil)
	rec := httptest.NewRecorder()
	ctrl.Summary(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, models.ScheduleFilters{ReportID: "3", ScheduleID: "9"}, repo.lastFilters)
}

func TestScheduleCreate(t *testing.T) {
	ctrl := NewScheduleController(&stubScheduleRepository{})

	body := `{
		"reporteId": 3,
		"nombre": "Ventas diarias 6am",
		"expresion": "FREQ=DAILY;BYHOUR=6",
		"horaReferencia": "06:00",
		"zonaHoraria": "America/Lima",
		"vigenteDesde": "2025-01-01"
	}`
	req := httptest.NewRequest("POST", "/reportes/programacion", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Create(rec, req)

	require.Equal(t, 201, rec.Code)

	var response models.CreateScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(7), response.ScheduleID)
}

func TestScheduleCreateValidation(t *testing.T) {
	ctrl := NewScheduleController(&stubScheduleRepository{})

	body := `{"reporteId": 3, "nombre": "x", "expresion": "FREQ=DAILY", "horaReferencia": "6am", "zonaHoraria": "America/Lima", "vigenteDesde": "2025-01-01"}`
	req := httptest.NewRequest("POST", "/reportes/programacion", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Create(rec, req)

	require.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), "horaReferencia debe tener formato HH:mm o HH:mm:ss")
}

func TestScheduleUpdateStatus(t *testing.T) {
	repo := &stubScheduleRepository{}
	ctrl := NewScheduleController(repo)

	req := httptest.NewRequest("PATCH", "/reportes/programacion/5/estado", strings.NewReader(`{"activo": false}`))
	rec := httptest.NewRecorder()
	ctrl.HandleItem(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, int64(5), repo.lastStatusID)
	assert.False(t, repo.lastActive)
}

func TestScheduleUpdateStatusRequiresActivo(t *testing.T) {
	ctrl := NewScheduleController(&stubScheduleRepository{})

	req := httptest.NewRequest("PATCH", "/reportes/programacion/5/estado", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	ctrl.HandleItem(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestScheduleUpdateStatusNotFound(t *testing.T) {
	ctrl := NewScheduleController(&stubScheduleRepository{notFound: true})

	req := httptest.NewRequest("PATCH", "/reportes/programacion/99/estado", strings.NewReader(`{"activo": true}`))
	rec := httptest.NewRecorder()
	ctrl.HandleItem(rec, req)

	assert.Equal(t, 404, rec.Code)
}

func TestScheduleDelete(t *testing.T) {
	repo := &stubScheduleRepository{}
	ctrl := NewScheduleController(repo)

	req := httptest.NewRequest("DELETE", "/reportes/programacion/5", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleItem(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestScheduleDeleteNotFound(t *testing.T) {
	ctrl := NewScheduleController(&stubScheduleRepository{notFound: true})

	req := httptest.NewRequest("DELETE", "/reportes/programacion/5", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleItem(rec, req)

	assert.Equal(t, 404, rec.Code)
}

func TestScheduleItemInvalidID(t *testing.T) {
	ctrl := NewScheduleController(&stubScheduleRepository{})

	req := httptest.NewRequest("DELETE", "/reportes/programacion/abc", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleItem(rec, req)

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), "programacionId invalido")
}
