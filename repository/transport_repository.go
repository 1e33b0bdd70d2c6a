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

// transportTripsCTE stages every delivery trip with its transit minutes.
// The filter clauses are interpolated already rendered and parameterized.
const transportTripsCTE = `
	WITH viajes AS (
		SELECT
			p.id_pedido,
			p.fecha_pedido,
			p.hora_pedido,
			e.fecha_entrega,
			e.hora_entrega,
			c.nombre       AS cliente,
			p.peso_kg,
			e.estado_entrega,
			(e.fecha_entrega + e.hora_entrega) -
			(p.fecha_pedido + p.hora_pedido)   AS duracion,
			EXTRACT(
				EPOCH FROM (
					(e.fecha_entrega + e.hora_entrega) -
					(p.fecha_pedido  + p.hora_pedido)
				)
			) / 60.0       AS minutos
		FROM ventas.pedido p
		JOIN ventas.entrega_pedido e
		  ON e.id_pedido = p.id_pedido
		JOIN ventas.cliente c
		  ON c.id_cliente = p.id_cliente
		%s
	)
`

// TransportRepository handles database operations for the transport report
type TransportRepository struct{}

// NewTransportRepository creates a new TransportRepository
func NewTransportRepository() *TransportRepository {
	return &TransportRepository{}
}

// Ensure TransportRepository implements TransportRepositoryInterface
var _ TransportRepositoryInterface = (*TransportRepository)(nil)

func buildTransportFilter(filters models.TransportFilters) (string, []interface{}) {
	f := sqlfilter.New()
	if filters.DateFrom != "" {
		f.Add("p.fecha_pedido >= $?::date", filters.DateFrom)
	}
	if filters.DateTo != "" {
		f.Add("p.fecha_pedido <= $?::date", filters.DateTo)
	}
	if filters.PaidOnly {
		f.AddExpr("EXISTS (SELECT 1 FROM ventas.venta v WHERE v.id_pedido = p.id_pedido)")
	}
	return f.Where()
}

// Summary retrieves trip counts, the average transit time, and the delay
// rate. Trips delayed are those strictly over the 90-minute threshold.
func (r *TransportRepository) Summary(ctx context.Context, filters models.TransportFilters) (*models.TransportSummary, error) {
	log.Printf("📦 Summary: Fetching transport summary (from=%q, to=%q, soloPagados=%v)",
		filters.DateFrom, filters.DateTo, filters.PaidOnly)

	where, args := buildTransportFilter(filters)

	query := fmt.Sprintf(transportTripsCTE, where) + `
		SELECT
			COUNT(*)                                             AS total_viajes,
			COALESCE(AVG(minutos), 0)                            AS tiempo_promedio_min,
			COUNT(*) FILTER (WHERE minutos > 90)                 AS con_retraso,
			COALESCE(
				ROUND(
					100.0 * COUNT(*) FILTER (WHERE minutos > 90)
						/ NULLIF(COUNT(*), 0),
					1
				),
				0
			)                                                    AS porcentaje_retrasos,
			COUNT(*) FILTER (WHERE estado_entrega = 'PENDIENTE') AS en_transito
		FROM viajes
	`

	var summary models.TransportSummary
	err := db.DB.QueryRowContext(ctx, query, args...).Scan(
		&summary.TotalTrips,
		&summary.AvgMinutes,
		&summary.Delayed,
		&summary.DelayedPercent,
		&summary.InTransit,
	)
	if err != nil {
		log.Printf("❌ Summary: Error fetching transport summary: %v", err)
		return nil, fmt.Errorf("failed to fetch transport summary: %w", err)
	}

	log.Printf("✅ Summary: Successfully fetched transport summary")
	return &summary, nil
}

// Detail retrieves one row per trip with derived delay minutes
func (r *TransportRepository) Detail(ctx context.Context, filters models.TransportFilters) ([]models.TransportTripDetail, error) {
	log.Printf("📦 Detail: Fetching transport detail (from=%q, to=%q, soloPagados=%v)",
		filters.DateFrom, filters.DateTo, filters.PaidOnly)

	where, args := buildTransportFilter(filters)

	query := fmt.Sprintf(transportTripsCTE, where) + `
		SELECT
			fecha_pedido::text                   AS fecha,
			id_pedido,
			cliente,
			peso_kg,
			TO_CHAR(hora_pedido,   'HH24:MI')    AS salida,
			TO_CHAR(hora_entrega,  'HH24:MI')    AS llegada,
			duracion::text,
			estado_entrega,
			CASE
				WHEN minutos > 90 THEN (minutos - 90)::int
				ELSE 0
			END                                  AS retraso_minutos,
			minutos
		FROM viajes
		ORDER BY
			fecha_pedido,
			hora_pedido,
			id_pedido
	`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Detail: Error fetching transport detail: %v", err)
		return nil, fmt.Errorf("failed to fetch transport detail: %w", err)
	}
	defer rows.Close()

	var result []models.TransportTripDetail

	for rows.Next() {
		var trip models.TransportTripDetail
		var departure, arrival, duration, status sql.NullString
		var kilos, minutes sql.NullFloat64

		if err := rows.Scan(
			&trip.Date,
			&trip.OrderID,
			&trip.Client,
			&kilos,
			&departure,
			&arrival,
			&duration,
			&status,
			&trip.DelayMinutes,
			&minutes,
		); err != nil {
			log.Printf("❌ Detail: Error scanning trip: %v", err)
			continue
		}

		trip.Kilos = kilos.Float64
		trip.Departure = departure.String
		trip.Arrival = arrival.String
		trip.Duration = duration.String
		trip.DeliveryStatus = status.String
		if minutes.Valid {
			trip.Minutes = &minutes.Float64
		}

		result = append(result, trip)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Detail: Error iterating transport detail: %v", err)
		return nil, fmt.Errorf("failed to iterate transport detail: %w", err)
	}

	log.Printf("✅ Detail: Successfully fetched %d trips", len(result))
	return result, nil
}
