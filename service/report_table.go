package service

import (
	"fmt"

	"frigorifico-sanpedro/models"
	"frigorifico-sanpedro/utils"
)

// EmptyResultMessage is rendered instead of rows when a report has no data
const EmptyResultMessage = "Sin resultados para los filtros aplicados."

// TableColumn is one column of a tabular report
type TableColumn struct {
	Label string
	Align string // left, center, right
}

// TotalLine is one footer total of a tabular report
type TotalLine struct {
	Label string
	Value string
}

// TableDocument is the presentation-ready form of a tabular report. It is
// built deterministically from the data rows, so the same input always
// yields the same document.
type TableDocument struct {
	Title   string
	Columns []TableColumn
	Rows    [][]string
	Totals  []TotalLine
}

// DelayLabel renders delay minutes for display
func DelayLabel(minutes int) string {
	if minutes > 0 {
		return fmt.Sprintf("+%dm", minutes)
	}
	return "A tiempo"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// SalesDetailDocument builds the printable form of the daily sales detail
func SalesDetailDocument(rows []models.SalesDetailRow) TableDocument {
	doc := TableDocument{
		Title: "Reporte de Ventas del Día",
		Columns: []TableColumn{
			{Label: "Cliente", Align: "left"},
			{Label: "Especie", Align: "left"},
			{Label: "Kg", Align: "right"},
			{Label: "Precio/kg", Align: "right"},
			{Label: "Desc. (%)", Align: "right"},
			{Label: "Total", Align: "right"},
		},
	}

	var totalKilos, totalAmount float64
	for _, row := range rows {
		doc.Rows = append(doc.Rows, []string{
			row.Client,
			row.Species,
			utils.FormatNumber(row.Kilos),
			utils.FormatSoles(row.PricePerKg),
			fmt.Sprintf("%s%%", utils.FormatNumber(row.DiscountPercent)),
			utils.FormatSoles(row.Total),
		})
		totalKilos += row.Kilos
		totalAmount += row.Total
	}

	if len(rows) > 0 {
		doc.Totals = []TotalLine{
			{Label: "Kilogramos:", Value: utils.FormatNumber(totalKilos) + " kg"},
			{Label: "Ventas:", Value: utils.FormatSoles(totalAmount)},
		}
	}

	return doc
}

// TransportDetailDocument builds the printable form of the transport detail
func TransportDetailDocument(trips []models.TransportTripDetail) TableDocument {
	doc := TableDocument{
		Title: "Detalle de Transporte Lurín → Ate",
		Columns: []TableColumn{
			{Label: "Fecha", Align: "left"},
			{Label: "Pedido", Align: "left"},
			{Label: "Cliente", Align: "left"},
			{Label: "Kg", Align: "right"},
			{Label: "Salida", Align: "center"},
			{Label: "Llegada", Align: "center"},
			{Label: "Duración", Align: "center"},
			{Label: "Estado", Align: "center"},
			{Label: "Retraso", Align: "right"},
		},
	}

	for _, trip := range trips {
		doc.Rows = append(doc.Rows, []string{
			trip.Date,
			fmt.Sprintf("%d", trip.OrderID),
			trip.Client,
			utils.FormatNumber(trip.Kilos),
			orDash(trip.Departure),
			orDash(trip.Arrival),
			orDash(trip.Duration),
			orDash(trip.DeliveryStatus),
			DelayLabel(trip.DelayMinutes),
		})
	}

	return doc
}

// SalesDetailCSV renders the daily sales detail as CSV, prices to two
// decimals
func SalesDetailCSV(rows []models.SalesDetailRow) string {
	header := []string{"Cliente", "Especie", "Kilogramos", "Precio/kg", "Descuento (%)", "Total"}

	csvRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		csvRows = append(csvRows, []string{
			row.Client,
			row.Species,
			utils.FormatNumber(row.Kilos),
			utils.FormatDecimal(row.PricePerKg),
			utils.FormatNumber(row.DiscountPercent),
			utils.FormatDecimal(row.Total),
		})
	}

	return utils.BuildCSV(header, csvRows)
}

// TransportDetailCSV renders the transport detail as CSV. The time column
// prefers exact minutes over the interval text; missing departures and
// arrivals render as a dash.
func TransportDetailCSV(trips []models.TransportTripDetail) string {
	header := []string{"Fecha", "Id Pedido", "Cliente", "Peso (kg)", "Salida", "Llegada", "Tiempo (min)", "Estado", "Retraso (min)"}

	csvRows := make([][]string, 0, len(trips))
	for _, trip := range trips {
		minutes := trip.Duration
		if trip.Minutes != nil {
			minutes = utils.FormatNumber(*trip.Minutes)
		}
		csvRows = append(csvRows, []string{
			trip.Date,
			fmt.Sprintf("%d", trip.OrderID),
			trip.Client,
			utils.FormatNumber(trip.Kilos),
			orDash(trip.Departure),
			orDash(trip.Arrival),
			minutes,
			trip.DeliveryStatus,
			fmt.Sprintf("%d", trip.DelayMinutes),
		})
	}

	return utils.BuildCSV(header, csvRows)
}
