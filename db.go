package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/shambadirect/agrimarket/internal/catalog"
)

// initDB connects to the optional Postgres catalog source. The core never
// writes to it after startup; the catalog stays read-only for the session.
func initDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	slog.Info("Database connected and migrated")
	return db, nil
}

func migrateDB(db *sql.DB) error {
	// position preserves the catalog's insertion order across loads.
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			position SERIAL,
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			subcategory TEXT NOT NULL DEFAULT '',
			price BIGINT NOT NULL DEFAULT 0,
			unit TEXT NOT NULL DEFAULT 'unit',
			location TEXT NOT NULL DEFAULT '',
			seller TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		);
	`)
	return err
}

// loadCatalog seeds the products table on first run and returns the full
// listing in insertion order.
func loadCatalog(db *sql.DB) ([]catalog.Product, error) {
	if err := seedProducts(db); err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT id, name, category, subcategory, price, unit, location, seller, image_url, description FROM products ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Subcategory, &p.Price, &p.Unit, &p.Location, &p.Seller, &p.ImageURL, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	slog.Info("Catalog loaded from database", "products", len(products))
	return products, nil
}

func seedProducts(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range catalog.Seed() {
		_, err := db.Exec(
			"INSERT INTO products (id, name, category, subcategory, price, unit, location, seller, image_url, description) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
			p.ID, p.Name, p.Category, p.Subcategory, p.Price, p.Unit, p.Location, p.Seller, p.ImageURL, p.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	slog.Info("Seeded products", "count", len(catalog.Seed()))
	return nil
}
