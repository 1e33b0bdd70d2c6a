package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"frigorifico-sanpedro/db"
	"frigorifico-sanpedro/models"
	"frigorifico-sanpedro/sqlfilter"
)

// volumeBucketOrder is the fixed display order of the volume histogram
var volumeBucketOrder = []string{
	">10,000 kg",
	"5,000-10,000 kg",
	"1,000-5,000 kg",
	"500-1,000 kg",
	"<500 kg",
}

// TopClientsRepository handles database operations for the top clients report
type TopClientsRepository struct{}

// NewTopClientsRepository creates a new TopClientsRepository
func NewTopClientsRepository() *TopClientsRepository {
	return &TopClientsRepository{}
}

// Ensure TopClientsRepository implements TopClientsRepositoryInterface
var _ TopClientsRepositoryInterface = (*TopClientsRepository)(nil)

// buildTopClientsFilter keeps every clause present with a NULL-guarded value
// so the tenure placeholder can be reused by the VIP count regardless of
// which filters the caller sent.
func buildTopClientsFilter(filters models.TopClientsFilters) (*sqlfilter.Filter, *sqlfilter.Clause) {
	f := sqlfilter.New()
	f.Add("( $?::text IS NULL OR c.nombre ILIKE '%' || $? || '%' )", sqlfilter.TextOrNil(filters.Client))
	tenure := f.Add(
		"( $?::int IS NULL OR DATE_PART('year', AGE(CURRENT_DATE, c.fecha_alta)) >= $?::int )",
		sqlfilter.IntOrNil(filters.MinTenure),
	)
	f.Add("( $?::text IS NULL OR c.cod_distrito = $? )", sqlfilter.TextOrNil(filters.District))
	return f, tenure
}

// fillVolumeBuckets returns all five histogram buckets in display order,
// zero-filling the ones the query returned no row for.
func fillVolumeBuckets(counts map[string]int) []models.VolumeBucketCount {
	result := make([]models.VolumeBucketCount, 0, len(volumeBucketOrder))
	for _, bucket := range volumeBucketOrder {
		result = append(result, models.VolumeBucketCount{
			Range:   bucket,
			Clients: counts[bucket],
		})
	}
	return result
}

// Summary retrieves the aggregate stats and volume distribution of the
// client base, restricted to paid orders
func (r *TopClientsRepository) Summary(ctx context.Context, filters models.TopClientsFilters) (*models.TopClientsSummary, error) {
	log.Printf("📦 Summary: Fetching top clients summary (cliente=%q, antiguedadMin=%q, distrito=%q)",
		filters.Client, filters.MinTenure, filters.District)

	f, tenure := buildTopClientsFilter(filters)
	where, args := f.Where("p.estado_pago = 'PAGADO'")

	query := fmt.Sprintf(`
		WITH pedidos_filtrados AS (
			SELECT
				p.*,
				c.nombre     AS nombre_cliente,
				c.fecha_alta AS fecha_alta_cliente
			FROM ventas.pedido  p
			JOIN ventas.cliente c
			  ON c.id_cliente = p.id_cliente
			%[1]s
		),
		volumen_por_cliente AS (
			SELECT
				id_cliente,
				nombre_cliente,
				SUM(peso_kg)            AS volumen_kg,
				MIN(fecha_alta_cliente) AS fecha_alta
			FROM pedidos_filtrados
			GROUP BY id_cliente, nombre_cliente
		),
		top10 AS (
			SELECT volumen_kg
			FROM volumen_por_cliente
			ORDER BY volumen_kg DESC
			LIMIT 10
		),
		resumen AS (
			SELECT
				(SELECT COUNT(*) FROM ventas.cliente) AS total_clientes,
				(
					SELECT COUNT(*)
					FROM ventas.cliente c
					WHERE DATE_PART('year', AGE(CURRENT_DATE, c.fecha_alta)) >= COALESCE(%[2]s::int, 10)
				) AS clientes_vip,
				(SELECT COALESCE(SUM(volumen_kg), 0) FROM top10) AS volumen_top10_kg,
				(
					SELECT COALESCE(SUM(monto_bruto * (d.valor / 100.0)), 0)
					FROM (
						SELECT
							p.id_cliente,
							p.peso_kg * p.precio AS monto_bruto,
							DATE_PART('year', AGE(CURRENT_DATE, c.fecha_alta)) AS antiguedad
						FROM ventas.pedido p
						JOIN ventas.cliente c
						  ON c.id_cliente = p.id_cliente
						%[1]s
					) t
					JOIN ventas.descuento d
					  ON t.antiguedad >= d.antiguedad_min
					 AND (d.antiguedad_max IS NULL OR t.antiguedad <= d.antiguedad_max)
				) AS descuentos_totales_soles
		),
		distribucion_volumen AS (
			SELECT
				CASE
					WHEN volumen_kg > 10000                THEN '>10,000 kg'
					WHEN volumen_kg BETWEEN 5000 AND 10000 THEN '5,000-10,000 kg'
					WHEN volumen_kg BETWEEN 1000 AND 5000  THEN '1,000-5,000 kg'
					WHEN volumen_kg BETWEEN 500 AND 1000   THEN '500-1,000 kg'
					ELSE '<500 kg'
				END      AS rango_volumen,
				COUNT(*) AS cantidad_clientes
			FROM volumen_por_cliente
			GROUP BY rango_volumen
		)
		SELECT
			r.total_clientes,
			r.clientes_vip,
			r.volumen_top10_kg,
			r.descuentos_totales_soles,
			d.rango_volumen,
			d.cantidad_clientes
		FROM resumen r
		LEFT JOIN distribucion_volumen d ON true
	`, where, tenure.Placeholder())

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Summary: Error fetching top clients summary: %v", err)
		return nil, fmt.Errorf("failed to fetch top clients summary: %w", err)
	}
	defer rows.Close()

	summary := &models.TopClientsSummary{}
	counts := make(map[string]int)
	found := false

	for rows.Next() {
		var bucket sql.NullString
		var clients sql.NullInt64
		var totalDiscounts sql.NullFloat64

		if err := rows.Scan(
			&summary.TotalClients,
			&summary.VIPClients,
			&summary.Top10VolumeKg,
			&totalDiscounts,
			&bucket,
			&clients,
		); err != nil {
			log.Printf("❌ Summary: Error scanning summary row: %v", err)
			continue
		}

		found = true
		summary.TotalDiscounts = totalDiscounts.Float64
		if bucket.Valid {
			counts[strings.TrimSpace(bucket.String)] = int(clients.Int64)
		}
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Summary: Error iterating summary rows: %v", err)
		return nil, fmt.Errorf("failed to iterate top clients summary: %w", err)
	}

	if !found {
		summary = &models.TopClientsSummary{}
	}
	summary.Distribution = fillVolumeBuckets(counts)

	log.Printf("✅ Summary: Successfully fetched top clients summary")
	return summary, nil
}

// Detail retrieves the five highest-volume clients with their tenure-based
// discount. The highest matching discount tier wins per client.
func (r *TopClientsRepository) Detail(ctx context.Context, filters models.TopClientsFilters) ([]models.TopClientRanking, error) {
	log.Printf("📦 Detail: Fetching top clients detail (cliente=%q, antiguedadMin=%q, distrito=%q)",
		filters.Client, filters.MinTenure, filters.District)

	f, _ := buildTopClientsFilter(filters)
	where, args := f.Where("p.estado_pago = 'PAGADO'")

	query := fmt.Sprintf(`
		WITH base AS (
			SELECT
				c.id_cliente,
				c.nombre,
				c.fecha_alta,
				SUM(p.peso_kg)            AS volumen_kg,
				SUM(p.peso_kg * p.precio) AS monto_total,
				MAX(p.fecha_pedido)       AS ultima_compra
			FROM ventas.cliente c
			JOIN ventas.pedido  p ON p.id_cliente = c.id_cliente
			%s
			GROUP BY
				c.id_cliente,
				c.nombre,
				c.fecha_alta
		)
		SELECT
			ROW_NUMBER() OVER (ORDER BY volumen_kg DESC, id_cliente) AS ranking,
			nombre                                                   AS cliente,
			id_cliente                                               AS ruc,
			volumen_kg,
			monto_total,
			ROUND(
				monto_total
				/ GREATEST(
					1,
					(DATE_PART('year', CURRENT_DATE) - DATE_PART('year', fecha_alta) + 1) * 12
				  )::numeric,
				2
			)                                                        AS prom_mensual,
			FLOOR(
				(CURRENT_DATE - fecha_alta)::numeric / 365.25
			)                                                        AS antiguedad_anios,
			COALESCE(d_match.valor, 0)                               AS descuento_antiguedad_pct,
			ROUND(monto_total * COALESCE(d_match.valor, 0) / 100.0, 2) AS descuento_aplicado_soles,
			ultima_compra::text
		FROM base
		LEFT JOIN LATERAL (
			SELECT valor
			FROM ventas.descuento d
			WHERE d.antiguedad_min <= FLOOR((CURRENT_DATE - base.fecha_alta)::numeric / 365.25)
			  AND (d.antiguedad_max IS NULL OR d.antiguedad_max >= FLOOR((CURRENT_DATE - base.fecha_alta)::numeric / 365.25))
			ORDER BY d.antiguedad_min DESC
			LIMIT 1
		) d_match ON true
		ORDER BY volumen_kg DESC, id_cliente
		LIMIT 5
	`, where)

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Detail: Error fetching top clients detail: %v", err)
		return nil, fmt.Errorf("failed to fetch top clients detail: %w", err)
	}
	defer rows.Close()

	var result []models.TopClientRanking

	for rows.Next() {
		var ranking models.TopClientRanking
		var ruc int64
		var volume, amount, monthly, tenure, discountPct, discountAmount sql.NullFloat64
		var lastPurchase sql.NullString

		if err := rows.Scan(
			&ranking.Rank,
			&ranking.Client,
			&ruc,
			&volume,
			&amount,
			&monthly,
			&tenure,
			&discountPct,
			&discountAmount,
			&lastPurchase,
		); err != nil {
			log.Printf("❌ Detail: Error scanning ranking row: %v", err)
			continue
		}

		ranking.RUC = fmt.Sprintf("%d", ruc)
		ranking.VolumeKg = volume.Float64
		ranking.TotalAmount = amount.Float64
		ranking.MonthlyAverage = monthly.Float64
		ranking.TenureYears = tenure.Float64
		ranking.DiscountPercent = discountPct.Float64
		ranking.DiscountAmount = discountAmount.Float64
		ranking.LastPurchase = lastPurchase.String

		result = append(result, ranking)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Detail: Error iterating ranking rows: %v", err)
		return nil, fmt.Errorf("failed to iterate top clients detail: %w", err)
	}

	log.Printf("✅ Detail: Successfully fetched %d ranked clients", len(result))
	return result, nil
}
