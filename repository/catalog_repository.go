package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"frigorifico-sanpedro/db"
	"frigorifico-sanpedro/models"
)

// CatalogRepository handles database operations for the report catalog
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// ListActive retrieves the report definitions that are currently valid
func (r *CatalogRepository) ListActive(ctx context.Context) ([]models.CatalogEntry, error) {
	log.Printf("📦 ListActive: Fetching report catalog")

	query := `
		SELECT
			reporte_id,
			nombre,
			categoria,
			version_metrica,
			vigente_desde::text,
			vigente_hasta::text
		FROM reportes.reporte
		WHERE vigente_hasta IS NULL OR vigente_hasta >= CURRENT_DATE
		ORDER BY nombre
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ ListActive: Error fetching catalog: %v", err)
		return nil, fmt.Errorf("failed to fetch report catalog: %w", err)
	}
	defer rows.Close()

	var entries []models.CatalogEntry

	for rows.Next() {
		var entry models.CatalogEntry
		var validTo sql.NullString

		if err := rows.Scan(
			&entry.ReportID,
			&entry.Name,
			&entry.Category,
			&entry.Version,
			&entry.ValidFrom,
			&validTo,
		); err != nil {
			log.Printf("❌ ListActive: Error scanning catalog row: %v", err)
			continue
		}

		if validTo.Valid {
			entry.ValidTo = &validTo.String
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ ListActive: Error iterating catalog: %v", err)
		return nil, fmt.Errorf("failed to iterate report catalog: %w", err)
	}

	log.Printf("✅ ListActive: Successfully fetched %d reports", len(entries))
	return entries, nil
}
