package catalog

import "github.com/shopspring/decimal"

// Seed values for the launch menu. Postgres, when configured, starts
// from the same rows (see internal/db).

func seedToppings() []Topping {
	return []Topping{
		{Name: "Tomatoes", Price: decimal.NewFromFloat(1.00)},
		{Name: "Onions", Price: decimal.NewFromFloat(0.50)},
		{Name: "Bell pepper", Price: decimal.NewFromFloat(1.00)},
		{Name: "Mushrooms", Price: decimal.NewFromFloat(1.20)},
		{Name: "Pineapple", Price: decimal.NewFromFloat(0.75)},
		{Name: "Sausage", Price: decimal.NewFromFloat(1.00)},
		{Name: "Pepperoni", Price: decimal.NewFromFloat(2.00)},
		{Name: "Barbecue chicken", Price: decimal.NewFromFloat(3.00)},
	}
}

func seedBasePrices() map[Size]decimal.Decimal {
	return map[Size]decimal.Decimal{
		SizeSmall:      decimal.NewFromInt(5),
		SizeMedium:     decimal.NewFromInt(7),
		SizeLarge:      decimal.NewFromInt(8),
		SizeExtraLarge: decimal.NewFromInt(9),
	}
}

// seedOffers wires the promo rules. The small size keeps an offer slot
// with no promo: the product has never run one for small.
func seedOffers() map[Size]OfferRule {
	return map[Size]OfferRule{
		SizeSmall: {Kind: OfferNone},
		SizeMedium: {
			Kind:                OfferMediumCombo,
			TwoToppingFlat:      decimal.NewFromInt(5),
			FourToppingPairRate: decimal.NewFromInt(9),
		},
		SizeLarge: {
			Kind:           OfferLargeCombo,
			DoubleToppings: []string{"Barbecue chicken", "Pepperoni"},
			Multiplier:     decimal.NewFromFloat(0.5),
		},
		SizeExtraLarge: {Kind: OfferNone},
	}
}

// Default is the built-in catalog used when no database is configured.
func Default() *Catalog {
	c, err := New(seedToppings(), seedBasePrices(), seedOffers())
	if err != nil {
		panic("catalog: invalid seed data: " + err.Error())
	}
	return c
}
