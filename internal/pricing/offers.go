package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/kryshchuk/super-pizza-order/internal/catalog"
)

// evaluateOffer decides whether the size's promo rule supersedes the
// naive base+toppings price and returns the tagged line total.
func evaluateOffer(cat *catalog.Catalog, size catalog.Size, contribs []ToppingContribution, itemCount int) OfferResult {
	naiveUnit := naiveUnitPrice(cat.BasePrice(size), contribs)
	rule := cat.OfferRule(size)

	switch rule.Kind {
	case catalog.OfferMediumCombo:
		return evaluateMediumCombo(rule, naiveUnit, len(contribs), itemCount)
	case catalog.OfferLargeCombo:
		return evaluateLargeCombo(rule, naiveUnit, contribs, itemCount)
	}

	return OfferResult{Kind: PriceNaive, Total: aggregate(naiveUnit, itemCount)}
}

// naiveUnitPrice is base price plus the sum of checked topping prices.
// The sum is seeded with zero so an empty contribution list yields the
// bare base price.
func naiveUnitPrice(base decimal.Decimal, contribs []ToppingContribution) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range contribs {
		sum = sum.Add(c.Price)
	}
	return base.Add(sum)
}

// aggregate is the price aggregator: unit price times item count.
func aggregate(unit decimal.Decimal, itemCount int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(itemCount)))
}

// evaluateMediumCombo applies the medium size's two mutually exclusive
// promos. The two-topping rule is checked first; when it matches, the
// bulk rule never fires.
func evaluateMediumCombo(rule catalog.OfferRule, naiveUnit decimal.Decimal, toppingCount, itemCount int) OfferResult {
	if toppingCount == 2 {
		// Flat promotional price per item, whatever the two toppings.
		return OfferResult{
			Kind:  PriceDiscounted,
			Total: aggregate(rule.TwoToppingFlat, itemCount),
		}
	}

	if toppingCount == 4 && itemCount >= 2 {
		// Items pair up at the bulk rate; an odd leftover item is
		// priced at the naive per-item rate.
		pairs := itemCount / 2
		total := rule.FourToppingPairRate.Mul(decimal.NewFromInt(int64(pairs)))
		if itemCount%2 == 1 {
			total = total.Add(naiveUnit)
		}
		return OfferResult{Kind: PriceDiscounted, Total: total}
	}

	return OfferResult{Kind: PriceNaive, Total: aggregate(naiveUnit, itemCount)}
}

// evaluateLargeCombo applies the large size's double-points combo:
// toppings in the promo set count two points, the rest one, and the
// combo is approved only when the checked toppings add up to exactly
// four points with no slack.
func evaluateLargeCombo(rule catalog.OfferRule, naiveUnit decimal.Decimal, contribs []ToppingContribution, itemCount int) OfferResult {
	doubleCount := 0
	for _, c := range contribs {
		if containsTopping(rule.DoubleToppings, c.Topping.Name) {
			doubleCount++
		}
	}
	totalCount := len(contribs)

	approved := (doubleCount == 2 && totalCount == 2) ||
		(doubleCount == 1 && totalCount == 3) ||
		(doubleCount == 0 && totalCount == 4)

	if approved {
		discountedUnit := naiveUnit.Mul(rule.Multiplier)
		return OfferResult{Kind: PriceDiscounted, Total: aggregate(discountedUnit, itemCount)}
	}

	return OfferResult{Kind: PriceNaive, Total: aggregate(naiveUnit, itemCount)}
}

func containsTopping(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
