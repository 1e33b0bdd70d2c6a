package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frigorifico-sanpedro/models"
)

func sampleSalesRows() []models.SalesDetailRow {
	return []models.SalesDetailRow{
		{Client: "Comercial Don Pedro", Species: "VACUNO", Kilos: 1250.5, PricePerKg: 18.4, DiscountPercent: 5, Total: 21859.24},
		{Client: "Carnes, SAC", Species: "PORCINO", Kilos: 300, PricePerKg: 12, DiscountPercent: 0, Total: 3600},
	}
}

func TestDelayLabel(t *testing.T) {
	assert.Equal(t, "A tiempo", DelayLabel(0))
	assert.Equal(t, "+1m", DelayLabel(1))
	assert.Equal(t, "+45m", DelayLabel(45))
}

func TestSalesDetailDocumentTotals(t *testing.T) {
	doc := SalesDetailDocument(sampleSalesRows())

	require.Len(t, doc.Rows, 2)
	require.Len(t, doc.Totals, 2)
	assert.Equal(t, "Kilogramos:", doc.Totals[0].Label)
	assert.Equal(t, "1550.5 kg", doc.Totals[0].Value)
	assert.Equal(t, "Ventas:", doc.Totals[1].Label)
	assert.Equal(t, "S/ 25,459.24", doc.Totals[1].Value)
}

func TestSalesDetailDocumentFormatsMoneyCells(t *testing.T) {
	doc := SalesDetailDocument(sampleSalesRows())

	assert.Equal(t, "S/ 18.40", doc.Rows[0][3])
	assert.Equal(t, "5%", doc.Rows[0][4])
	assert.Equal(t, "S/ 21,859.24", doc.Rows[0][5])
}

func TestSalesDetailDocumentEmptyHasNoTotals(t *testing.T) {
	doc := SalesDetailDocument(nil)

	assert.Empty(t, doc.Rows)
	assert.Empty(t, doc.Totals)
}

func TestTransportDetailDocumentDelayColumn(t *testing.T) {
	trips := []models.TransportTripDetail{
		{Date: "2025-08-14", OrderID: 12, Client: "A", DelayMinutes: 0},
		{Date: "2025-08-14", OrderID: 13, Client: "B", DelayMinutes: 25},
	}

	doc := TransportDetailDocument(trips)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "A tiempo", doc.Rows[0][8])
	assert.Equal(t, "+25m", doc.Rows[1][8])
}

func TestTransportDetailDocumentDashesMissingTimes(t *testing.T) {
	doc := TransportDetailDocument([]models.TransportTripDetail{{OrderID: 5}})

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "-", doc.Rows[0][4])
	assert.Equal(t, "-", doc.Rows[0][5])
}

func TestSalesDetailCSV(t *testing.T) {
	csv := SalesDetailCSV(sampleSalesRows())
	lines := strings.Split(csv, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Cliente,Especie,Kilogramos,Precio/kg,Descuento (%),Total", lines[0])
	assert.Equal(t, "Comercial Don Pedro,VACUNO,1250.5,18.40,5,21859.24", lines[1])
	// Comma in the client name forces quoting
	assert.Equal(t, `"Carnes, SAC",PORCINO,300,12.00,0,3600.00`, lines[2])
}

func TestTransportDetailCSVPrefersExactMinutes(t *testing.T) {
	minutes := 95.0
	trips := []models.TransportTripDetail{
		{Date: "2025-08-14", OrderID: 7, Client: "A", Kilos: 120, Departure: "06:00", Arrival: "07:35", Duration: "01:35:00", Minutes: &minutes, DeliveryStatus: "ENTREGADO", DelayMinutes: 5},
		{Date: "2025-08-15", OrderID: 8, Client: "B", Kilos: 80, Duration: "01:10:00", DeliveryStatus: "PENDIENTE"},
	}

	csv := TransportDetailCSV(trips)
	lines := strings.Split(csv, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "2025-08-14,7,A,120,06:00,07:35,95,ENTREGADO,5", lines[1])
	assert.Equal(t, "2025-08-15,8,B,80,-,-,01:10:00,PENDIENTE,0", lines[2])
}
