package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PostgresRepository loads toppings and base prices from the tables
// created by internal/db. Offer rules are code-defined configuration
// and come from the seed.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context) (*Catalog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, price
		FROM catalog_toppings
		ORDER BY display_order
	`)
	if err != nil {
		return nil, fmt.Errorf("load toppings: %w", err)
	}
	defer rows.Close()

	var toppings []Topping
	for rows.Next() {
		var t Topping
		var price string
		if err := rows.Scan(&t.Name, &price); err != nil {
			return nil, fmt.Errorf("scan topping: %w", err)
		}
		t.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("topping %q price: %w", t.Name, err)
		}
		toppings = append(toppings, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	baseRows, err := r.db.Query(ctx, `SELECT size, price FROM catalog_base_prices`)
	if err != nil {
		return nil, fmt.Errorf("load base prices: %w", err)
	}
	defer baseRows.Close()

	basePrices := make(map[Size]decimal.Decimal, 4)
	for baseRows.Next() {
		var size, price string
		if err := baseRows.Scan(&size, &price); err != nil {
			return nil, fmt.Errorf("scan base price: %w", err)
		}
		p, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("base price for %q: %w", size, err)
		}
		basePrices[Size(size)] = p
	}
	if err := baseRows.Err(); err != nil {
		return nil, err
	}

	return New(toppings, basePrices, seedOffers())
}
