package models

// TransportSummary represents the aggregate view of delivery trips
type TransportSummary struct {
	TotalTrips     float64 `json:"totalViajes"`
	AvgMinutes     float64 `json:"tiempoPromedioMin"`
	Delayed        float64 `json:"conRetraso"`
	DelayedPercent float64 `json:"porcentajeRetrasos"`
	InTransit      float64 `json:"enTransito"`
}

// TransportTripDetail represents one delivery trip with derived timing math.
// Minutes over the 90-minute threshold become delay minutes; a trip at
// exactly 90 minutes is on time.
type TransportTripDetail struct {
	Date           string   `json:"fecha"`
	OrderID        int64    `json:"idPedido"`
	Client         string   `json:"cliente"`
	Kilos          float64  `json:"pesoKg"`
	Departure      string   `json:"salida"`
	Arrival        string   `json:"llegada"`
	Duration       string   `json:"duracion"`
	Minutes        *float64 `json:"minutos"`
	DeliveryStatus string   `json:"estadoEntrega"`
	DelayMinutes   int      `json:"retrasoMinutos"`
}

// TransportFilters holds the optional filters for the transport report
type TransportFilters struct {
	DateFrom string // YYYY-MM-DD, inclusive
	DateTo   string // YYYY-MM-DD, inclusive
	PaidOnly bool   // restrict to orders that already have a sale
}
