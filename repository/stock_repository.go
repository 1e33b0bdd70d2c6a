package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"frigorifico-sanpedro/db"
	"frigorifico-sanpedro/models"
	"frigorifico-sanpedro/sqlfilter"
)

// StockRepository handles database operations for the cold-storage stock report
type StockRepository struct{}

// NewStockRepository creates a new StockRepository
func NewStockRepository() *StockRepository {
	return &StockRepository{}
}

// Ensure StockRepository implements StockRepositoryInterface
var _ StockRepositoryInterface = (*StockRepository)(nil)

// Current retrieves chamber occupancy grouped by chamber and species
func (r *StockRepository) Current(ctx context.Context, filters models.StockFilters) ([]models.StockRow, error) {
	log.Printf("📦 Current: Fetching stock (camara=%q, especie=%q)", filters.Chamber, filters.Species)

	query := `
		SELECT
			'Cámara ' || c.id_camara AS camara,
			g.especie                AS especie,
			COUNT(*)                 AS piezas,
			SUM(s.peso_final)        AS kilogramos,
			c.estado                 AS estado_camara
		FROM producto.servicio s
		JOIN producto.ganado  g ON g.id_ganado = s.id_ganado
		JOIN producto.camara  c ON c.id_camara = s.id_camara
		WHERE ( $1::int IS NULL OR c.id_camara = $1::int )
		  AND ( $2::text IS NULL OR g.especie = $2 )
		GROUP BY c.id_camara, g.especie, c.estado
		ORDER BY c.id_camara, g.especie
	`

	rows, err := db.DB.QueryContext(ctx, query,
		sqlfilter.IntOrNil(filters.Chamber),
		sqlfilter.TextOrNil(filters.Species),
	)
	if err != nil {
		log.Printf("❌ Current: Error fetching stock: %v", err)
		return nil, fmt.Errorf("failed to fetch stock: %w", err)
	}
	defer rows.Close()

	var result []models.StockRow

	for rows.Next() {
		var row models.StockRow
		var kilos sql.NullFloat64
		var status sql.NullString

		if err := rows.Scan(&row.Chamber, &row.Species, &row.Pieces, &kilos, &status); err != nil {
			log.Printf("❌ Current: Error scanning stock row: %v", err)
			continue
		}

		row.Kilos = kilos.Float64
		row.Status = status.String
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Current: Error iterating stock rows: %v", err)
		return nil, fmt.Errorf("failed to iterate stock rows: %w", err)
	}

	log.Printf("✅ Current: Successfully fetched %d stock rows", len(result))
	return result, nil
}
