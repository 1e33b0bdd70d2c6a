package db

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"log"
	"os"

	driver "github.com/arangodb/go-driver"
	arangohttp "github.com/arangodb/go-driver/http"
)

// SalesCollection is the document collection holding captured sales.
const SalesCollection = "ventas"

// Arango holds the document-store database handle
var Arango driver.Database

// InitArango initializes the ArangoDB connection from environment variables
// and provisions the sales collection once, outside the request path.
// When ARANGO_CA_CERT (base64 PEM) is set, the certificate is loaded into
// the client's trust configuration; verification is never disabled.
func InitArango(ctx context.Context) error {
	url := os.Getenv("ARANGO_URL")
	dbName := os.Getenv("ARANGO_DB_NAME")
	user := os.Getenv("ARANGO_USER")
	password := os.Getenv("ARANGO_PASSWORD")

	if url == "" || dbName == "" {
		return fmt.Errorf("arango connection variables not set. Set ARANGO_URL and ARANGO_DB_NAME")
	}

	var tlsConfig *tls.Config
	if encodedCA := os.Getenv("ARANGO_CA_CERT"); encodedCA != "" {
		pem, err := base64.StdEncoding.DecodeString(encodedCA)
		if err != nil {
			return fmt.Errorf("failed to decode ARANGO_CA_CERT: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return fmt.Errorf("ARANGO_CA_CERT does not contain a valid PEM certificate")
		}
		tlsConfig = &tls.Config{RootCAs: pool}
	}

	conn, err := arangohttp.NewConnection(arangohttp.ConnectionConfig{
		Endpoints: []string{url},
		TLSConfig: tlsConfig,
	})
	if err != nil {
		return fmt.Errorf("failed to create arango connection: %w", err)
	}

	client, err := driver.NewClient(driver.ClientConfig{
		Connection:     conn,
		Authentication: driver.BasicAuthentication(user, password),
	})
	if err != nil {
		return fmt.Errorf("failed to create arango client: %w", err)
	}

	Arango, err = client.Database(ctx, dbName)
	if err != nil {
		return fmt.Errorf("failed to open arango database %s: %w", dbName, err)
	}

	if err := ensureSalesCollection(ctx); err != nil {
		return err
	}

	log.Printf("✓ Arango connection established successfully (db=%s)", dbName)
	return nil
}

// ensureSalesCollection provisions the sales collection idempotently at
// startup so write paths never have to check for it.
func ensureSalesCollection(ctx context.Context) error {
	exists, err := Arango.CollectionExists(ctx, SalesCollection)
	if err != nil {
		return fmt.Errorf("failed to check collection %s: %w", SalesCollection, err)
	}
	if exists {
		return nil
	}

	if _, err := Arango.CreateCollection(ctx, SalesCollection, nil); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", SalesCollection, err)
	}
	log.Printf("✓ Created collection %s", SalesCollection)
	return nil
}
