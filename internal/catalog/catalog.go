package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type priceKey struct {
	topping string
	size    Size
}

// Catalog is the read-only reference data the pricing engine runs
// against: toppings in display order, per-size base prices, and the
// per-size offer rules. Built once, never mutated.
type Catalog struct {
	toppings   []Topping
	prices     map[priceKey]decimal.Decimal
	basePrices map[Size]decimal.Decimal
	offers     map[Size]OfferRule
}

// New builds a catalog. Topping order is preserved: it is the display
// order and the iteration order used for offer eligibility counting.
func New(toppings []Topping, basePrices map[Size]decimal.Decimal, offers map[Size]OfferRule) (*Catalog, error) {
	if len(toppings) == 0 {
		return nil, errors.New("catalog needs at least one topping")
	}

	c := &Catalog{
		toppings:   make([]Topping, 0, len(toppings)),
		prices:     make(map[priceKey]decimal.Decimal, len(toppings)*4),
		basePrices: make(map[Size]decimal.Decimal, 4),
		offers:     make(map[Size]OfferRule, 4),
	}

	seen := make(map[string]bool, len(toppings))
	for _, t := range toppings {
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate topping %q", t.Name)
		}
		if t.Price.IsNegative() {
			return nil, fmt.Errorf("topping %q has negative price", t.Name)
		}
		seen[t.Name] = true
		c.toppings = append(c.toppings, t)

		for _, size := range Sizes() {
			c.prices[priceKey{t.Name, size}] = t.Price
		}
	}

	for _, size := range Sizes() {
		base, ok := basePrices[size]
		if !ok || !base.IsPositive() {
			return nil, fmt.Errorf("missing or non-positive base price for size %q", size)
		}
		c.basePrices[size] = base

		rule, ok := offers[size]
		if !ok {
			rule = OfferRule{Kind: OfferNone}
		}
		c.offers[size] = rule
	}

	return c, nil
}

// Toppings returns the toppings in declaration order.
func (c *Catalog) Toppings() []Topping {
	out := make([]Topping, len(c.toppings))
	copy(out, c.toppings)
	return out
}

func (c *Catalog) HasTopping(name string) bool {
	_, ok := c.prices[priceKey{name, SizeSmall}]
	return ok
}

// Price is the two-key lookup for a topping's surcharge on a size.
func (c *Catalog) Price(topping string, size Size) (decimal.Decimal, bool) {
	p, ok := c.prices[priceKey{topping, size}]
	return p, ok
}

func (c *Catalog) BasePrice(size Size) decimal.Decimal {
	return c.basePrices[size]
}

func (c *Catalog) OfferRule(size Size) OfferRule {
	return c.offers[size]
}
