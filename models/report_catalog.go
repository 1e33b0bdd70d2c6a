package models

// CatalogEntry represents one active report definition in the catalog
type CatalogEntry struct {
	ReportID  int64   `json:"reporteId"`
	Name      string  `json:"nombre"`
	Category  string  `json:"categoria"`
	Version   string  `json:"version"`
	ValidFrom string  `json:"vigenteDesde"`
	ValidTo   *string `json:"vigenteHasta"`
}

// CatalogResponse represents the response for the report catalog listing
type CatalogResponse struct {
	Reports []CatalogEntry `json:"reportes"`
}
