package db

import (
	"context"
	"os"
	"testing"
)

// TestConnectPostgres exercises the Postgres connection when a
// DATABASE_URL is available.
func TestConnectPostgres(t *testing.T) {
	t.Run("valid DATABASE_URL should connect", func(t *testing.T) {
		// Skip unless the environment provides a real database.
		if os.Getenv("DATABASE_URL") == "" {
			t.Skip("DATABASE_URL not set, skipping integration test")
		}

		pool := ConnectPostgres()
		defer pool.Close()

		var one int
		if err := pool.QueryRow(context.Background(), "SELECT 1").Scan(&one); err != nil {
			t.Fatalf("query failed: %v", err)
		}
	})
}
