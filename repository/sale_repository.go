package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	driver "github.com/arangodb/go-driver"

	"frigorifico-sanpedro/db"
	"frigorifico-sanpedro/models"
)

// SaleRepository captures sales in the document store, resolving the client
// against the relational store first
type SaleRepository struct{}

// NewSaleRepository creates a new SaleRepository
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

// Ensure SaleRepository implements SaleRepositoryInterface
var _ SaleRepositoryInterface = (*SaleRepository)(nil)

// resolveClient finds a client by DNI (natural person) or RUC (company)
func resolveClient(ctx context.Context, document string) (int64, string, error) {
	query := `
		SELECT c.id_cliente,
		       COALESCE(pn.nombres || ' ' || pn.apellidos, pj.razon_social) AS nombre_completo
		FROM cliente c
		LEFT JOIN persona_natural  pn ON c.id_cliente = pn.id_cliente
		LEFT JOIN persona_juridica pj ON c.id_cliente = pj.id_cliente
		WHERE COALESCE(pn.dni, pj.ruc) = $1
		LIMIT 1
	`

	var clientID int64
	var name sql.NullString
	err := db.DB.QueryRowContext(ctx, query, document).Scan(&clientID, &name)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", fmt.Errorf("Cliente no encontrado con ese DNI/RUC")
		}
		return 0, "", fmt.Errorf("failed to resolve client: %w", err)
	}

	return clientID, name.String, nil
}

// Create resolves the client and saves the sale document with estado
// "pendiente"
func (r *SaleRepository) Create(ctx context.Context, req *models.CreateSaleRequest) (*models.SaleDocument, error) {
	log.Printf("📦 Create: Capturing sale for document %q", req.Document)

	clientID, clientName, err := resolveClient(ctx, req.Document)
	if err != nil {
		log.Printf("⚠️ Create: %v", err)
		return nil, err
	}

	sale := models.SaleDocument{
		ClientID:   clientID,
		ClientName: clientName,
		Date:       time.Now().UTC().Format(time.RFC3339),
		Items:      req.Items,
		Total:      req.Total,
		Status:     "pendiente",
	}

	col, err := db.Arango.Collection(ctx, db.SalesCollection)
	if err != nil {
		log.Printf("❌ Create: Error opening sales collection: %v", err)
		return nil, fmt.Errorf("failed to open sales collection: %w", err)
	}

	meta, err := col.CreateDocument(ctx, sale)
	if err != nil {
		log.Printf("❌ Create: Error saving sale: %v", err)
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	sale.Key = meta.Key
	sale.ID = string(meta.ID)
	sale.Rev = meta.Rev

	log.Printf("✅ Create: Successfully captured sale %s for client %d", sale.Key, clientID)
	return &sale, nil
}

func readSales(ctx context.Context, cursor driver.Cursor) ([]models.SaleDocument, error) {
	defer cursor.Close()

	var result []models.SaleDocument
	for {
		var sale models.SaleDocument
		_, err := cursor.ReadDocument(ctx, &sale)
		if driver.IsNoMoreDocuments(err) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read sale document: %w", err)
		}
		result = append(result, sale)
	}

	return result, nil
}

// List retrieves every captured sale, newest first
func (r *SaleRepository) List(ctx context.Context) ([]models.SaleDocument, error) {
	log.Printf("📦 List: Fetching sales")

	cursor, err := db.Arango.Query(ctx, `
		FOR v IN ventas
		SORT v.fecha DESC
		RETURN v
	`, nil)
	if err != nil {
		log.Printf("❌ List: Error querying sales: %v", err)
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}

	result, err := readSales(ctx, cursor)
	if err != nil {
		log.Printf("❌ List: %v", err)
		return nil, err
	}

	log.Printf("✅ List: Successfully fetched %d sales", len(result))
	return result, nil
}

// ListByClient retrieves the sales of one client, newest first
func (r *SaleRepository) ListByClient(ctx context.Context, clientID int64) ([]models.SaleDocument, error) {
	log.Printf("📦 ListByClient: Fetching sales for client %d", clientID)

	cursor, err := db.Arango.Query(ctx, `
		FOR v IN ventas
		FILTER v.clienteId == @clienteId OR v.clienteId == @clienteIdText
		SORT v.fecha DESC
		RETURN v
	`, map[string]interface{}{
		"clienteId":     clientID,
		"clienteIdText": fmt.Sprintf("%d", clientID),
	})
	if err != nil {
		log.Printf("❌ ListByClient: Error querying sales for client %d: %v", clientID, err)
		return nil, fmt.Errorf("failed to query sales by client: %w", err)
	}

	result, err := readSales(ctx, cursor)
	if err != nil {
		log.Printf("❌ ListByClient: %v", err)
		return nil, err
	}

	log.Printf("✅ ListByClient: Successfully fetched %d sales for client %d", len(result), clientID)
	return result, nil
}

// UpdateStatus patches the estado field of one sale
func (r *SaleRepository) UpdateStatus(ctx context.Context, key string, status string) (*models.SaleStatusResponse, error) {
	log.Printf("📦 UpdateStatus: Setting sale %s estado=%q", key, status)

	col, err := db.Arango.Collection(ctx, db.SalesCollection)
	if err != nil {
		log.Printf("❌ UpdateStatus: Error opening sales collection: %v", err)
		return nil, fmt.Errorf("failed to open sales collection: %w", err)
	}

	_, err = col.UpdateDocument(ctx, key, map[string]interface{}{"estado": status})
	if err != nil {
		if driver.IsNotFoundGeneral(err) {
			log.Printf("⚠️ UpdateStatus: Sale %s not found", key)
			return nil, fmt.Errorf("Venta no encontrada")
		}
		log.Printf("❌ UpdateStatus: Error updating sale %s: %v", key, err)
		return nil, fmt.Errorf("failed to update sale status: %w", err)
	}

	log.Printf("✅ UpdateStatus: Successfully updated sale %s", key)
	return &models.SaleStatusResponse{Success: true, Key: key, Status: status}, nil
}
