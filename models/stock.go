package models

// StockRow represents the occupancy of one cold-storage chamber for one species
type StockRow struct {
	Chamber string  `json:"camara"`
	Species string  `json:"especie"`
	Pieces  int64   `json:"piezas"`
	Kilos   float64 `json:"kilogramos"`
	Status  string  `json:"estado"`
}

// StockFilters holds the optional filters for the stock report
type StockFilters struct {
	Chamber string // chamber id, loosely typed
	Species string
}
