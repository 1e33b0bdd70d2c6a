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

// SalesReportRepository handles database operations for the daily sales report
type SalesReportRepository struct{}

// NewSalesReportRepository creates a new SalesReportRepository
func NewSalesReportRepository() *SalesReportRepository {
	return &SalesReportRepository{}
}

// Ensure SalesReportRepository implements SalesReportRepositoryInterface
var _ SalesReportRepositoryInterface = (*SalesReportRepository)(nil)

// Summary retrieves the aggregate totals of liquidated orders.
// An empty sales table yields all-zero fields, never NULL.
func (r *SalesReportRepository) Summary(ctx context.Context) (*models.SalesSummary, error) {
	log.Printf("📦 Summary: Fetching daily sales summary")

	query := `
		SELECT
			COALESCE(SUM(v.monto_total), 0)                            AS total_ventas,
			COALESCE(SUM(p.peso_kg), 0)                                AS total_kilogramos,
			COALESCE(ROUND(SUM(v.monto_total) / NULLIF(SUM(p.peso_kg), 0), 2), 0) AS precio_promedio_kg
		FROM ventas.venta   v
		JOIN ventas.pedido  p ON v.id_pedido  = p.id_pedido
		JOIN ventas.cliente c ON p.id_cliente = c.id_cliente
		LEFT JOIN ventas.descuento d ON v.id_descuento = d.id_descuento
	`

	var summary models.SalesSummary
	err := db.DB.QueryRowContext(ctx, query).Scan(
		&summary.TotalAmount,
		&summary.TotalKilos,
		&summary.AvgPricePerKg,
	)
	if err != nil {
		log.Printf("❌ Summary: Error fetching sales summary: %v", err)
		return nil, fmt.Errorf("failed to fetch sales summary: %w", err)
	}

	log.Printf("✅ Summary: Successfully fetched daily sales summary")
	return &summary, nil
}

// Detail retrieves one row per (client, species) bucket, filtered by the
// optional date, district, species and client-name parameters.
func (r *SalesReportRepository) Detail(ctx context.Context, filters models.SalesDetailFilters) ([]models.SalesDetailRow, error) {
	log.Printf("📦 Detail: Fetching daily sales detail (fecha=%q, sede=%q, especie=%q, cliente=%q)",
		filters.Date, filters.District, filters.Species, filters.Client)

	f := sqlfilter.New()
	f.Add("( $?::date IS NULL OR p.fecha_pedido = $?::date )", sqlfilter.TextOrNil(filters.Date))
	f.Add("( $?::text IS NULL OR c.cod_distrito = $? )", sqlfilter.TextOrNil(filters.District))
	f.Add("( $?::text IS NULL OR p.tipo_carne = $? )", sqlfilter.TextOrNil(filters.Species))
	f.Add("( $?::text IS NULL OR c.nombre ILIKE '%' || $? || '%' )", sqlfilter.TextOrNil(filters.Client))
	where, args := f.Where()

	query := fmt.Sprintf(`
		SELECT
			c.nombre                  AS cliente,
			p.tipo_carne              AS especie,
			SUM(p.peso_kg)            AS kilogramos,
			AVG(p.precio)             AS precio_kg,
			COALESCE(MAX(d.valor), 0) AS descuento_porcentaje,
			SUM(v.monto_total)        AS total
		FROM ventas.venta   v
		JOIN ventas.pedido  p ON v.id_pedido  = p.id_pedido
		JOIN ventas.cliente c ON p.id_cliente = c.id_cliente
		LEFT JOIN ventas.descuento d ON v.id_descuento = d.id_descuento
		%s
		GROUP BY c.nombre, p.tipo_carne
		ORDER BY total DESC, c.nombre, p.tipo_carne
	`, where)

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Detail: Error fetching sales detail: %v", err)
		return nil, fmt.Errorf("failed to fetch sales detail: %w", err)
	}
	defer rows.Close()

	var result []models.SalesDetailRow

	for rows.Next() {
		var row models.SalesDetailRow
		var kilos, price, discount, total sql.NullFloat64

		if err := rows.Scan(&row.Client, &row.Species, &kilos, &price, &discount, &total); err != nil {
			log.Printf("❌ Detail: Error scanning sales row: %v", err)
			continue
		}

		row.Kilos = kilos.Float64
		row.PricePerKg = price.Float64
		row.DiscountPercent = discount.Float64
		row.Total = total.Float64

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Detail: Error iterating sales detail: %v", err)
		return nil, fmt.Errorf("failed to iterate sales detail: %w", err)
	}

	log.Printf("✅ Detail: Successfully fetched %d sales rows", len(result))
	return result, nil
}
