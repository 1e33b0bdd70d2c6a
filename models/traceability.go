package models

// TraceabilityPiece represents the chain-of-custody record for one processed
// unit. The piece code is synthesized from the order id, never stored.
type TraceabilityPiece struct {
	Code            string  `json:"codigo"`
	Species         string  `json:"especie"`
	FinalWeightKg   float64 `json:"pesoFinalKg"`
	SlaughterDate   string  `json:"fechaBeneficio"`
	SlaughterTime   string  `json:"horaBeneficio"`
	Chamber         string  `json:"camara"`
	Agent           string  `json:"comisionado"`
	Client          string  `json:"cliente"`
	ComplaintStatus string  `json:"estadoReclamo"`
}

// Complaint represents one claim associated with an order
type Complaint struct {
	Type        string `json:"tipoReclamo"`
	Urgency     string `json:"urgencia"`
	Status      string `json:"estado"`
	Description string `json:"descripcion"`
}

// OrderComplaint is a Complaint tagged with its order id, used by the
// "all complaints" listing
type OrderComplaint struct {
	OrderID int64 `json:"pedidoId"`
	Complaint
}
