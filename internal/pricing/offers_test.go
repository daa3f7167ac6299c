package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kryshchuk/super-pizza-order/internal/catalog"
)

// newTestEngine returns an engine over the built-in catalog with the
// given toppings checked and item count set for one size.
func newTestEngine(t *testing.T, size catalog.Size, toppings []string, itemCount int) *Engine {
	t.Helper()

	engine := NewEngine(catalog.Default())
	for _, name := range toppings {
		if err := engine.SetToppingFlag(name, size, true); err != nil {
			t.Fatalf("unexpected error checking %q: %v", name, err)
		}
	}
	if err := engine.SetItemCount(size, itemCount); err != nil {
		t.Fatalf("unexpected error setting item count: %v", err)
	}
	return engine
}

func assertTotal(t *testing.T, engine *Engine, size catalog.Size, want string) {
	t.Helper()

	total, err := engine.Total(size)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := decimal.RequireFromString(want)
	if !total.Equal(expected) {
		t.Errorf("total for %s: expected %s, got %s", size, expected, total)
	}
}

func TestAllSizes_NoSelection_TotalIsZero(t *testing.T) {
	engine := NewEngine(catalog.Default())

	for _, size := range catalog.Sizes() {
		assertTotal(t, engine, size, "0")
	}
}

func TestSmall_NoPromo_NaivePrice(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeSmall,
		[]string{"Tomatoes", "Pepperoni"}, 2)

	// (5 + 1.00 + 2.00) * 2
	assertTotal(t, engine, catalog.SizeSmall, "16")

	result, err := engine.Evaluate(catalog.SizeSmall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != PriceNaive {
		t.Errorf("small has no promo, expected NAIVE, got %s", result.Kind)
	}
}

func TestExtraLarge_TwoToppings(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeExtraLarge,
		[]string{"Tomatoes", "Onions"}, 1)

	// 9 + 1.00 + 0.50
	assertTotal(t, engine, catalog.SizeExtraLarge, "10.5")
}

func TestExtraLarge_NoToppings_BasePriceOnly(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeExtraLarge, nil, 3)

	// Empty contribution list sums to 0, never errors.
	assertTotal(t, engine, catalog.SizeExtraLarge, "27")
}

func TestMedium_TwoToppingPromo_FlatPrice(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeMedium,
		[]string{"Barbecue chicken", "Mushrooms"}, 3)

	// Flat 5 per item, independent of which two toppings.
	assertTotal(t, engine, catalog.SizeMedium, "15")

	result, err := engine.Evaluate(catalog.SizeMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != PriceDiscounted {
		t.Errorf("expected DISCOUNTED, got %s", result.Kind)
	}
}

func TestMedium_TwoToppingPromo_AnyTwoToppings(t *testing.T) {
	cheap := newTestEngine(t, catalog.SizeMedium,
		[]string{"Onions", "Pineapple"}, 2)
	expensive := newTestEngine(t, catalog.SizeMedium,
		[]string{"Pepperoni", "Barbecue chicken"}, 2)

	assertTotal(t, cheap, catalog.SizeMedium, "10")
	assertTotal(t, expensive, catalog.SizeMedium, "10")
}

func TestMedium_FourToppingBulk_OddItemCount(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeMedium,
		[]string{"Tomatoes", "Onions", "Bell pepper", "Mushrooms"}, 5)

	// pairs = 2 at rate 9, one leftover at naive 7 + 3.70.
	assertTotal(t, engine, catalog.SizeMedium, "28.7")
}

func TestMedium_FourToppingBulk_EvenItemCount(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeMedium,
		[]string{"Tomatoes", "Onions", "Bell pepper", "Mushrooms"}, 4)

	// pairs = 2, no leftover.
	assertTotal(t, engine, catalog.SizeMedium, "18")
}

func TestMedium_FourToppings_SingleItem_NaivePrice(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeMedium,
		[]string{"Tomatoes", "Onions", "Bell pepper", "Mushrooms"}, 1)

	// Bulk promo needs at least one full pair.
	assertTotal(t, engine, catalog.SizeMedium, "10.7")

	result, err := engine.Evaluate(catalog.SizeMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != PriceNaive {
		t.Errorf("expected NAIVE, got %s", result.Kind)
	}
}

func TestMedium_ThreeToppings_NaivePrice(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeMedium,
		[]string{"Tomatoes", "Onions", "Bell pepper"}, 2)

	// (7 + 2.50) * 2
	assertTotal(t, engine, catalog.SizeMedium, "19")
}

func TestLarge_BothPromoToppings_ComboApproved(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeLarge,
		[]string{"Barbecue chicken", "Pepperoni"}, 2)

	// (8 + 3.00 + 2.00) * 0.5 per item.
	assertTotal(t, engine, catalog.SizeLarge, "13")

	result, err := engine.Evaluate(catalog.SizeLarge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != PriceDiscounted {
		t.Errorf("expected DISCOUNTED, got %s", result.Kind)
	}
}

func TestLarge_OnePromoToppingPlusTwo_ComboApproved(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeLarge,
		[]string{"Pepperoni", "Tomatoes", "Onions"}, 1)

	// doubleCount=1, totalCount=3: (8 + 2.00 + 1.00 + 0.50) * 0.5
	assertTotal(t, engine, catalog.SizeLarge, "5.75")
}

func TestLarge_FourPlainToppings_ComboApproved(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeLarge,
		[]string{"Tomatoes", "Onions", "Mushrooms", "Pineapple"}, 1)

	// doubleCount=0, totalCount=4: (8 + 3.45) * 0.5
	assertTotal(t, engine, catalog.SizeLarge, "5.725")
}

func TestLarge_ThreePlainToppings_ComboRejected(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeLarge,
		[]string{"Tomatoes", "Onions", "Mushrooms"}, 1)

	// Three plain toppings are only three points; naive price applies.
	assertTotal(t, engine, catalog.SizeLarge, "10.7")

	result, err := engine.Evaluate(catalog.SizeLarge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != PriceNaive {
		t.Errorf("expected NAIVE, got %s", result.Kind)
	}
}

func TestLarge_BothPromoPlusExtra_ComboRejected(t *testing.T) {
	engine := newTestEngine(t, catalog.SizeLarge,
		[]string{"Barbecue chicken", "Pepperoni", "Tomatoes"}, 1)

	// doubleCount=2 with totalCount=3 is five points: too many.
	assertTotal(t, engine, catalog.SizeLarge, "14")
}
