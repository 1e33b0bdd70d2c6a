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

type stubStockRepository struct {
	lastFilters models.StockFilters
	rows        []models.StockRow
}

func (s *stubStockRepository) Current(ctx context.Context, filters models.StockFilters) ([]models.StockRow, error) {
	s.lastFilters = filters
	return s.rows, nil
}

func TestStockCurrentPassesFiltersThrough(t *testing.T) {
	repo := &stubStockRepository{rows: []models.StockRow{
		{Chamber: "Cámara 1", Species: "VACUNO", Pieces: 18, Kilos: 4230.5, Status: "OPERATIVA"},
	}}
	ctrl := NewStockController(repo)

	req := httptest.NewRequest("GET", "/reportes/stock-actual?camara=1&especie=VACUNO", nil)
	rec := httptest.NewRecorder()
	ctrl.Current(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, models.StockFilters{Chamber: "1", Species: "VACUNO"}, repo.lastFilters)

	var rows []models.StockRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Cámara 1", rows[0].Chamber)
}

func TestStockCurrentEmpty(t *testing.T) {
	ctrl := NewStockController(&stubStockRepository{})

	req := httptest.NewRequest("GET", "/reportes/stock-actual", nil)
	rec := httptest.NewRecorder()
	ctrl.Current(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestStockCurrentMethodGuard(t *testing.T) {
	ctrl := NewStockController(&stubStockRepository{})

	req := httptest.NewRequest("DELETE", "/reportes/stock-actual", nil)
	rec := httptest.NewRecorder()
	ctrl.Current(rec, req)

	assert.Equal(t, 405, rec.Code)
}
