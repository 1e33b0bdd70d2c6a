package models

// SaleItem represents one line of a captured sale document
type SaleItem struct {
	ProductID int64   `json:"productoId"`
	Name      string  `json:"nombre"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precioUnitario"`
	Subtotal  float64 `json:"subtotal"`
}

// SaleDocument represents a sale captured in the document store.
// Key/ID/Rev are assigned by the store on save.
type SaleDocument struct {
	Key        string     `json:"_key,omitempty"`
	ID         string     `json:"_id,omitempty"`
	Rev        string     `json:"_rev,omitempty"`
	ClientID   int64      `json:"clienteId"`
	ClientName string     `json:"clienteNombre,omitempty"`
	Date       string     `json:"fecha"`
	Items      []SaleItem `json:"items"`
	Total      float64    `json:"total"`
	Status     string     `json:"estado"` // pendiente | pagado | anulado
}

// CreateSaleRequest represents the body for capturing a sale.
// The client is resolved in the relational store by DNI/RUC.
type CreateSaleRequest struct {
	Document string     `json:"documento"`
	Items    []SaleItem `json:"items"`
	Total    float64    `json:"total"`
}

// SaleStatusRequest represents the body for PATCH /ventas/{key}/estado
type SaleStatusRequest struct {
	Status string `json:"estado"`
}

// SaleStatusResponse represents the result of a sale status update
type SaleStatusResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"id"`
	Status  string `json:"estado"`
}
