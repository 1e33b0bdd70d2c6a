package controller

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frigorifico-sanpedro/models"
	"frigorifico-sanpedro/service"
)

type stubTransportRepository struct {
	summary     *models.TransportSummary
	trips       []models.TransportTripDetail
	err         error
	lastFilters models.TransportFilters
}

func (s *stubTransportRepository) Summary(ctx context.Context, filters models.TransportFilters) (*models.TransportSummary, error) {
	s.lastFilters = filters
	return s.summary, s.err
}

func (s *stubTransportRepository) Detail(ctx context.Context, filters models.TransportFilters) ([]models.TransportTripDetail, error) {
	s.lastFilters = filters
	return s.trips, s.err
}

func newTransportController(repo *stubTransportRepository) *TransportController {
	return NewTransportController(repo, service.NewReportService(), service.NewPDFService("http://localhost:8080"))
}

func TestTransportSummaryPassesFiltersThrough(t *testing.T) {
	repo := &stubTransportRepository{summary: &models.TransportSummary{TotalTrips: 42}}
	ctrl := newTransportController(repo)

	req := httptest.NewRequest("GET", "/reportes/transporte/resumen?fechaInicio=2025-08-01&fechaFin=2025-08-31&soloPagados=true", nil)
	rec := httptest.NewRecorder()
	ctrl.Summary(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, models.TransportFilters{
		DateFrom: "2025-08-01",
		DateTo:   "2025-08-31",
		PaidOnly: true,
	}, repo.lastFilters)
}

func TestTransportSummaryPaidOnlyRequiresExactToken(t *testing.T) {
	repo := &stubTransportRepository{summary: &models.TransportSummary{}}
	ctrl := newTransportController(repo)

	req := httptest.NewRequest("GET", "/reportes/transporte/resumen?soloPagados=TRUE", nil)
	rec := httptest.NewRecorder()
	ctrl.Summary(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.False(t, repo.lastFilters.PaidOnly)
}

func TestTransportDetailEmptyIsJSONArray(t *testing.T) {
	ctrl := newTransportController(&stubTransportRepository{})

	req := httptest.NewRequest("GET", "/reportes/transporte/detalle", nil)
	rec := httptest.NewRecorder()
	ctrl.Detail(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestTransportDownloadCSVHeaders(t *testing.T) {
	minutes := 95.0
	repo := &stubTransportRepository{
		trips: []models.TransportTripDetail{
			{Date: "2025-08-14", OrderID: 7, Client: "A", Kilos: 120, Departure: "06:00", Arrival: "07:35", Minutes: &minutes, DeliveryStatus: "ENTREGADO", DelayMinutes: 5},
		},
	}
	ctrl := newTransportController(repo)

	req := httptest.NewRequest("GET", "/reportes/transporte/detalle/csv", nil)
	rec := httptest.NewRecorder()
	ctrl.DownloadCSV(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="reporte-transporte.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "2025-08-14,7,A,120,06:00,07:35,95,ENTREGADO,5")
}

func TestTransportDetailMethodGuard(t *testing.T) {
	ctrl := newTransportController(&stubTransportRepository{})

	req := httptest.NewRequest("DELETE", "/reportes/transporte/detalle", nil)
	rec := httptest.NewRecorder()
	ctrl.Detail(rec, req)

	assert.Equal(t, 405, rec.Code)
}
