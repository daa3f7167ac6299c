package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/kryshchuk/super-pizza-order/internal/catalog"
)

var (
	// ErrInvalidSize mirrors the catalog sentinel so callers can check
	// either package. A size outside the four variants is an
	// integration bug, not user input.
	ErrInvalidSize = catalog.ErrInvalidSize

	ErrInvalidCount   = errors.New("item count must be >= 0")
	ErrUnknownTopping = errors.New("unknown topping")
)

// ToppingContribution is one checked topping's price entry for a size.
// Unchecked toppings produce no entry at all — eligibility counting
// counts entries, not values, so absence and zero are different things.
type ToppingContribution struct {
	Topping catalog.Topping `json:"topping"`
	Price   decimal.Decimal `json:"price"`
}

// PriceKind tags whether a promo superseded the naive price. A
// discounted total that happens to equal the naive one must still be
// distinguishable.
type PriceKind string

const (
	PriceNaive      PriceKind = "NAIVE"
	PriceDiscounted PriceKind = "DISCOUNTED"
)

// OfferResult is the outcome of offer evaluation for one size: the
// final payable total for the line (item count folded in) plus the tag.
type OfferResult struct {
	Kind  PriceKind       `json:"kind"`
	Total decimal.Decimal `json:"total"`
}

// Quote is the itemized breakdown exposed for display and diagnostics.
type Quote struct {
	Size          catalog.Size          `json:"size"`
	BasePrice     decimal.Decimal       `json:"base_price"`
	Contributions []ToppingContribution `json:"contributions"`
	ItemCount     int                   `json:"item_count"`
	Kind          PriceKind             `json:"kind"`
	Total         decimal.Decimal       `json:"total"`
}

type flagKey struct {
	topping string
	size    catalog.Size
}

// selectionState is the raw input state: one flag per (topping, size)
// pair and one item count per size. Keys cover the full cross-product
// from construction, so a missing entry can never be confused with an
// unchecked one.
type selectionState struct {
	flags  map[flagKey]bool
	counts map[catalog.Size]int
}

func newSelectionState(cat *catalog.Catalog) *selectionState {
	s := &selectionState{
		flags:  make(map[flagKey]bool),
		counts: make(map[catalog.Size]int, 4),
	}
	for _, t := range cat.Toppings() {
		for _, size := range catalog.Sizes() {
			s.flags[flagKey{t.Name, size}] = false
		}
	}
	for _, size := range catalog.Sizes() {
		s.counts[size] = 0
	}
	return s
}
