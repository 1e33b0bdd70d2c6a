package models

// SalesSummary represents the aggregate totals for the daily sales report.
// Every numeric field defaults to 0 when the underlying SUM/AVG has no rows.
type SalesSummary struct {
	TotalAmount   float64 `json:"totalVentas"`
	TotalKilos    float64 `json:"totalKilogramos"`
	AvgPricePerKg float64 `json:"precioPromedioKg"`
}

// SalesDetailRow represents one (client, species) aggregation bucket
// Example:
// {
//   "cliente": "Comercial Don Pedro",
//   "especie": "VACUNO",
//   "kilogramos": 1250.5,
//   "precioKg": 18.4,
//   "descuentoPorcentaje": 5,
//   "total": 21859.24
// }
type SalesDetailRow struct {
	Client          string  `json:"cliente"`
	Species         string  `json:"especie"`
	Kilos           float64 `json:"kilogramos"`
	PricePerKg      float64 `json:"precioKg"`
	DiscountPercent float64 `json:"descuentoPorcentaje"`
	Total           float64 `json:"total"`
}

// SalesDetailFilters holds the optional filters for the daily sales detail.
// Empty string means "not set" (no constraint).
type SalesDetailFilters struct {
	Date     string // YYYY-MM-DD
	District string // client district code (sede)
	Species  string // meat type
	Client   string // case-insensitive substring of the client name
}
