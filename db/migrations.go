package db

import (
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations executes pending migrations from db/migrations. It is
// idempotent and safe to call on every startup; the structures this service
// writes to are provisioned here, outside the request path, never lazily on
// first write.
func RunMigrations() error {
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "db/migrations"
	}

	driver, err := postgres.WithInstance(DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("⚠️ RunMigrations: failed to close migration source: %v", srcErr)
		}
		if dbErr != nil {
			log.Printf("⚠️ RunMigrations: failed to close migration database: %v", dbErr)
		}
	}()

	err = m.Up()
	if err == migrate.ErrNoChange {
		log.Printf("✓ Migrations up-to-date, nothing to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.Printf("✓ Applied migrations successfully (version %d)", version)
	return nil
}
