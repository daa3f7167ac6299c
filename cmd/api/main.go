package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kryshchuk/super-pizza-order/internal/catalog"
	"github.com/kryshchuk/super-pizza-order/internal/db"
	"github.com/kryshchuk/super-pizza-order/internal/router"
	"github.com/kryshchuk/super-pizza-order/internal/session"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatalf("❌ Missing env var: JWT_SECRET")
	}

	// ───────────────────────── CATALOG ─────────────────────────
	// Postgres is optional: without DATABASE_URL the built-in seed
	// catalog serves, which is all a single-store deployment needs.
	var catalogRepo catalog.Repository
	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		catalogRepo = catalog.NewPostgresRepository(pgDB)
	} else {
		log.Println("DATABASE_URL not set, using built-in catalog")
		catalogRepo = catalog.NewMemoryRepository()
	}

	catalogService, err := catalog.NewService(context.Background(), catalogRepo)
	if err != nil {
		log.Fatal("❌ Catalog load failed:", err)
	}

	// ───────────────────────── SESSIONS ─────────────────────────
	sessionRepo := session.NewInMemoryRepository()
	sessionService := session.NewService(sessionRepo, catalogService)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	sessionHandler := session.NewHandler(sessionService)

	r := router.New(catalogHandler, sessionHandler)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
