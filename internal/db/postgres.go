package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the catalog tables and seeds the launch menu.
// Offer rules are code-defined configuration and are not stored.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// TOPPINGS
	// -------------------------------
	toppingsSQL := `
		CREATE TABLE IF NOT EXISTS catalog_toppings (
			name VARCHAR(100) PRIMARY KEY,
			display_order INT NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0)
		)
	`
	if _, err := db.Exec(ctx, toppingsSQL); err != nil {
		return err
	}

	// -------------------------------
	// BASE PRICES
	// -------------------------------
	basePricesSQL := `
		CREATE TABLE IF NOT EXISTS catalog_base_prices (
			size VARCHAR(20) PRIMARY KEY,
			price NUMERIC(10,2) NOT NULL CHECK (price > 0)
		)
	`
	if _, err := db.Exec(ctx, basePricesSQL); err != nil {
		return err
	}

	// -------------------------------
	// SEED (launch menu, idempotent)
	// -------------------------------
	seedToppingsSQL := `
		INSERT INTO catalog_toppings (name, display_order, price) VALUES
			('Tomatoes', 1, 1.00),
			('Onions', 2, 0.50),
			('Bell pepper', 3, 1.00),
			('Mushrooms', 4, 1.20),
			('Pineapple', 5, 0.75),
			('Sausage', 6, 1.00),
			('Pepperoni', 7, 2.00),
			('Barbecue chicken', 8, 3.00)
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := db.Exec(ctx, seedToppingsSQL); err != nil {
		return err
	}

	seedBasePricesSQL := `
		INSERT INTO catalog_base_prices (size, price) VALUES
			('small', 5.00),
			('medium', 7.00),
			('large', 8.00),
			('extraLarge', 9.00)
		ON CONFLICT (size) DO NOTHING
	`
	if _, err := db.Exec(ctx, seedBasePricesSQL); err != nil {
		return err
	}

	return nil
}
