package models

// VolumeBucketCount represents one row of the volume distribution histogram.
// The five buckets always round-trip in fixed display order, zero-filled
// when empty.
type VolumeBucketCount struct {
	Range   string `json:"rangoVolumen"`
	Clients int    `json:"cantidadClientes"`
}

// TopClientsSummary represents the aggregate stats for the top clients report
type TopClientsSummary struct {
	TotalClients   float64             `json:"totalClientes"`
	VIPClients     float64             `json:"clientesVip"`
	Top10VolumeKg  float64             `json:"volumenTop10Kg"`
	TotalDiscounts float64             `json:"descuentosTotalesSoles"`
	Distribution   []VolumeBucketCount `json:"distribucion"`
}

// TopClientRanking represents one ranked client with tenure-based discount
// Example:
// {
//   "ranking": 1,
//   "cliente": "Comercial Don Pedro",
//   "ruc": "42",
//   "volumenKg": 15230.5,
//   "montoTotal": 280150.75,
//   "promMensual": 4669.18,
//   "antiguedadAnios": 12,
//   "descuentoAntiguedadPct": 8,
//   "descuentoAplicadoSoles": 22412.06,
//   "ultimaCompra": "2025-08-14"
// }
type TopClientRanking struct {
	Rank            int64   `json:"ranking"`
	Client          string  `json:"cliente"`
	RUC             string  `json:"ruc"`
	VolumeKg        float64 `json:"volumenKg"`
	TotalAmount     float64 `json:"montoTotal"`
	MonthlyAverage  float64 `json:"promMensual"`
	TenureYears     float64 `json:"antiguedadAnios"`
	DiscountPercent float64 `json:"descuentoAntiguedadPct"`
	DiscountAmount  float64 `json:"descuentoAplicadoSoles"`
	LastPurchase    string  `json:"ultimaCompra"`
}

// TopClientsFilters holds the optional filters for the top clients report.
// MinTenure arrives loosely typed from the query string; unparseable input
// means "no constraint" (the VIP count then falls back to 10 years).
type TopClientsFilters struct {
	Client    string
	MinTenure string
	District  string
}
