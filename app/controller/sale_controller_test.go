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
)

type stubSaleRepository struct {
	lastClientID  int64
	lastKey       string
	lastStatus    string
	unknownClient bool
	unknownSale   bool
}

func (s *stubSaleRepository) Create(ctx context.Context, req *models.CreateSaleRequest) (*models.SaleDocument, error) {
	if s.unknownClient {
		return nil, fmt.Errorf("Cliente no encontrado con ese DNI/RUC")
	}
	return &models.SaleDocument{
		Key:      "4821",
		ClientID: 15,
		Items:    req.Items,
		Total:    req.Total,
		Status:   "pendiente",
	}, nil
}

func (s *stubSaleRepository) List(ctx context.Context) ([]models.SaleDocument, error) {
	return nil, nil
}

func (s *stubSaleRepository) ListByClient(ctx context.Context, clientID int64) ([]models.SaleDocument, error) {
	s.lastClientID = clientID
	return nil, nil
}

func (s *stubSaleRepository) UpdateStatus(ctx context.Context, key string, status string) (*models.SaleStatusResponse, error) {
	if s.unknownSale {
		return nil, fmt.Errorf("Venta no encontrada")
	}
	s.lastKey = key
	s.lastStatus = status
	return &models.SaleStatusResponse{Success: true, Key: key, Status: status}, nil
}

func TestCreateSale(t *testing.T) {
	ctrl := NewSaleController(&stubSaleRepository{})

	body := `{
		"documento": "20481234567",
		"items": [{ "productoId": 3, "nombre": "Media res", "cantidad": 2, "precioUnitario": 890.5, "subtotal": 1781 }],
		"total": 1781
	}`
	req := httptest.NewRequest("POST", "/ventas", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.HandleSales(rec, req)

	require.Equal(t, 201, rec.Code)

	var sale models.SaleDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sale))
	assert.Equal(t, "pendiente", sale.Status)
	assert.Equal(t, 1781.0, sale.Total)
}

func TestCreateSaleRequiresDocument(t *testing.T) {
	ctrl := NewSaleController(&stubSaleRepository{})

	body := `{"items": [{"productoId": 3, "cantidad": 1, "precioUnitario": 10, "subtotal": 10}], "total": 10}`
	req := httptest.NewRequest("POST", "/ventas", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.HandleSales(rec, req)

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), "documento es requerido")
}

func TestCreateSaleRequiresItems(t *testing.T) {
	ctrl := NewSaleController(&stubSaleRepository{})

	body := `{"documento": "20481234567", "items": [], "total": 0}`
	req := httptest.NewRequest("POST", "/ventas", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.HandleSales(rec, req)

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), "items es requerido")
}

func TestCreateSaleUnknownClient(t *testing.T) {
	ctrl := NewSaleController(&stubSaleRepository{unknownClient: true})

	body := `{"documento": "99999999", "items": [{"productoId": 1, "cantidad": 1, "precioUnitario": 5, "subtotal": 5}], "total": 5}`
	req := httptest.NewRequest("POST", "/ventas", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.HandleSales(rec, req)

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cliente no encontrado con ese DNI/RUC")
}

func TestListSalesByClient(t *testing.T) {
	repo := &stubSaleRepository{}
	ctrl := NewSaleController(repo)

	req := httptest.NewRequest("GET", "/ventas/cliente/15", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleSaleItem(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, int64(15), repo.lastClientID)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestUpdateSaleStatus(t *testing.T) {
	repo := &stubSaleRepository{}
	ctrl := NewSaleController(repo)

	req := httptest.NewRequest("PATCH", "/ventas/4821/estado", strings.NewReader(`{"estado": "pagado"}`))
	rec := httptest.NewRecorder()
	ctrl.HandleSaleItem(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "4821", repo.lastKey)
	assert.Equal(t, "pagado", repo.lastStatus)
}

func TestUpdateSaleStatusRequiresEstado(t *testing.T) {
	ctrl := NewSaleController(&stubSaleRepository{})

	req := httptest.NewRequest("PATCH", "/ventas/4821/estado", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	ctrl.HandleSaleItem(rec, req)

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), "estado es requerido")
}

func TestUpdateSaleStatusNotFound(t *testing.T) {
	ctrl := NewSaleController(&stubSaleRepository{unknownSale: true})

	req := httptest.NewRequest("PATCH", "/ventas/4821/estado", strings.NewReader(`{"estado": "pagado"}`))
	rec := httptest.NewRecorder()
	ctrl.HandleSaleItem(rec, req)

	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Body.String(), "Venta no encontrada")
}

func TestHandleSaleItemRejectsUnknownRoute(t *testing.T) {
	ctrl := NewSaleController(&stubSaleRepository{})

	req := httptest.NewRequest("DELETE", "/ventas/4821", nil)
	rec := httptest.NewRecorder()
	ctrl.HandleSaleItem(rec, req)

	assert.Equal(t, 405, rec.Code)
}
