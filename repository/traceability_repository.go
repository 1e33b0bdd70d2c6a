package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"frigorifico-sanpedro/db"
	"frigorifico-sanpedro/models"
)

// tracePieceColumns synthesizes the piece code from the order id and joins
// the sales side to the processing side through the ganado reference, whose
// stored form carries a one-letter prefix.
const tracePieceColumns = `
	SELECT
		'PZ-2025-' || TO_CHAR(p.id_pedido, 'FM000000') AS codigo_pieza,
		p.tipo_carne               AS especie,
		p.peso_kg                  AS peso_final_kg,
		v.fecha::text              AS fecha_beneficio,
		v.hora::text               AS hora_beneficio,
		'Cámara ' || cam.id_camara AS camara,
		cm.nombre                  AS comisionado,
		c.nombre                   AS cliente,
		COALESCE(
			(
				SELECT r.estado_reclamo
				FROM reclamos.reclamo r
				WHERE r.id_pedido = p.id_pedido
				ORDER BY r.id_reclamo DESC
				LIMIT 1
			),
			'SIN_RECLAMOS'
		) AS estado_reclamo
	FROM ventas.pedido p
	JOIN ventas.venta    v  ON v.id_pedido  = p.id_pedido
	JOIN ventas.cliente  c  ON c.id_cliente = p.id_cliente
	JOIN producto.servicio s ON s.id_ganado = CAST(SUBSTRING(p.id_ganado FROM 2) AS INTEGER)
	JOIN producto.camara cam ON cam.id_camara = s.id_camara
	JOIN producto.comisionado cm ON cm.id_comisionado = s.id_comisionado
`

// TraceabilityRepository handles database operations for chain-of-custody lookups
type TraceabilityRepository struct{}

// NewTraceabilityRepository creates a new TraceabilityRepository
func NewTraceabilityRepository() *TraceabilityRepository {
	return &TraceabilityRepository{}
}

// Ensure TraceabilityRepository implements TraceabilityRepositoryInterface
var _ TraceabilityRepositoryInterface = (*TraceabilityRepository)(nil)

func scanPiece(scan func(dest ...interface{}) error) (*models.TraceabilityPiece, error) {
	var piece models.TraceabilityPiece
	var weight sql.NullFloat64
	var date, hour sql.NullString

	err := scan(
		&piece.Code,
		&piece.Species,
		&weight,
		&date,
		&hour,
		&piece.Chamber,
		&piece.Agent,
		&piece.Client,
		&piece.ComplaintStatus,
	)
	if err != nil {
		return nil, err
	}

	piece.FinalWeightKg = weight.Float64
	piece.SlaughterDate = date.String
	piece.SlaughterTime = hour.String
	return &piece, nil
}

// Piece retrieves the traceability record of the piece cut for one order.
// A missing order yields (nil, nil).
func (r *TraceabilityRepository) Piece(ctx context.Context, orderID int64) (*models.TraceabilityPiece, error) {
	log.Printf("📦 Piece: Fetching traceability for order %d", orderID)

	query := tracePieceColumns + `
	WHERE p.id_pedido = $1
	`

	row := db.DB.QueryRowContext(ctx, query, orderID)
	piece, err := scanPiece(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("⚠️ Piece: No traceability record for order %d", orderID)
			return nil, nil
		}
		log.Printf("❌ Piece: Error fetching traceability for order %d: %v", orderID, err)
		return nil, fmt.Errorf("failed to fetch piece traceability: %w", err)
	}

	log.Printf("✅ Piece: Successfully fetched traceability for order %d", orderID)
	return piece, nil
}

// AllPieces retrieves the 100 most recent traceability records
func (r *TraceabilityRepository) AllPieces(ctx context.Context) ([]models.TraceabilityPiece, error) {
	log.Printf("📦 AllPieces: Fetching recent traceability records")

	query := tracePieceColumns + `
	ORDER BY p.id_pedido DESC
	LIMIT 100
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ AllPieces: Error fetching traceability records: %v", err)
		return nil, fmt.Errorf("failed to fetch traceability records: %w", err)
	}
	defer rows.Close()

	var result []models.TraceabilityPiece

	for rows.Next() {
		piece, err := scanPiece(rows.Scan)
		if err != nil {
			log.Printf("❌ AllPieces: Error scanning piece: %v", err)
			continue
		}
		result = append(result, *piece)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ AllPieces: Error iterating pieces: %v", err)
		return nil, fmt.Errorf("failed to iterate traceability records: %w", err)
	}

	log.Printf("✅ AllPieces: Successfully fetched %d pieces", len(result))
	return result, nil
}

// Complaints retrieves the claims filed against one order, oldest first
func (r *TraceabilityRepository) Complaints(ctx context.Context, orderID int64) ([]models.Complaint, error) {
	log.Printf("📦 Complaints: Fetching complaints for order %d", orderID)

	query := `
		SELECT
			r.tipo_reclamo,
			r.urgencia,
			r.estado_reclamo,
			r.descripcion
		FROM reclamos.reclamo r
		WHERE r.id_pedido = $1
		ORDER BY r.id_reclamo
	`

	rows, err := db.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		log.Printf("❌ Complaints: Error fetching complaints for order %d: %v", orderID, err)
		return nil, fmt.Errorf("failed to fetch complaints: %w", err)
	}
	defer rows.Close()

	var result []models.Complaint

	for rows.Next() {
		var c models.Complaint
		var description sql.NullString

		if err := rows.Scan(&c.Type, &c.Urgency, &c.Status, &description); err != nil {
			log.Printf("❌ Complaints: Error scanning complaint: %v", err)
			continue
		}

		c.Description = description.String
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Complaints: Error iterating complaints: %v", err)
		return nil, fmt.Errorf("failed to iterate complaints: %w", err)
	}

	log.Printf("✅ Complaints: Successfully fetched %d complaints for order %d", len(result), orderID)
	return result, nil
}

// AllComplaints retrieves the 200 most recent claims across all orders
func (r *TraceabilityRepository) AllComplaints(ctx context.Context) ([]models.OrderComplaint, error) {
	log.Printf("📦 AllComplaints: Fetching recent complaints")

	query := `
		SELECT
			r.id_pedido,
			r.tipo_reclamo,
			r.urgencia,
			r.estado_reclamo,
			r.descripcion
		FROM reclamos.reclamo r
		ORDER BY r.id_pedido DESC, r.id_reclamo DESC
		LIMIT 200
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ AllComplaints: Error fetching complaints: %v", err)
		return nil, fmt.Errorf("failed to fetch complaints: %w", err)
	}
	defer rows.Close()

	var result []models.OrderComplaint

	for rows.Next() {
		var c models.OrderComplaint
		var description sql.NullString

		if err := rows.Scan(&c.OrderID, &c.Type, &c.Urgency, &c.Status, &description); err != nil {
			log.Printf("❌ AllComplaints: Error scanning complaint: %v", err)
			continue
		}

		c.Description = description.String
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ AllComplaints: Error iterating complaints: %v", err)
		return nil, fmt.Errorf("failed to iterate complaints: %w", err)
	}

	log.Printf("✅ AllComplaints: Successfully fetched %d complaints", len(result))
	return result, nil
}
