package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frigorifico-sanpedro/models"
)

type stubTopClientsRepository struct {
	lastFilters models.TopClientsFilters
	rankings    []models.TopClientRanking
}

func (s *stubTopClientsRepository) Summary(ctx context.Context, filters models.TopClientsFilters) (*models.TopClientsSummary, error) {
	s.lastFilters = filters
	return &models.TopClientsSummary{
		TotalClients: 48,
		VIPClients:   6,
		Distribution: []models.VolumeBucketCount{
			{Range: ">10,000 kg", Clients: 2},
			{Range: "5,000-10,000 kg", Clients: 0},
			{Range: "1,000-5,000 kg", Clients: 11},
			{Range: "500-1,000 kg", Clients: 0},
			{Range: "<500 kg", Clients: 35},
		},
	}, nil
}

func (s *stubTopClientsRepository) Detail(ctx context.Context, filters models.TopClientsFilters) ([]models.TopClientRanking, error) {
	s.lastFilters = filters
	return s.rankings, nil
}

func TestTopClientsSummaryPassesFiltersThrough(t *testing.T) {
	repo := &stubTopClientsRepository{}
	ctrl := NewTopClientsController(repo)

	req := httptest.NewRequest("GET", "/reportes/top-clientes/resumen?cliente=pedro&antiguedadMin=5&distrito=SJL", nil)
	rec := httptest.NewRecorder()
	ctrl.Summary(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, models.TopClientsFilters{Client: "pedro", MinTenure: "5", District: "SJL"}, repo.lastFilters)

	var summary models.TopClientsSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Len(t, summary.Distribution, 5)
	assert.Equal(t, ">10,000 kg", summary.Distribution[0].Range)
}

func TestTopClientsDetailEmpty(t *testing.T) {
	ctrl := NewTopClientsController(&stubTopClientsRepository{})

	req := httptest.NewRequest("GET", "/reportes/top-clientes/detalle", nil)
	rec := httptest.NewRecorder()
	ctrl.Detail(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestTopClientsSummaryMethodGuard(t *testing.T) {
	ctrl := NewTopClientsController(&stubTopClientsRepository{})

	req := httptest.NewRequest("POST", "/reportes/top-clientes/resumen", nil)
	rec := httptest.NewRecorder()
	ctrl.Summary(rec, req)

	assert.Equal(t, 405, rec.Code)
}
