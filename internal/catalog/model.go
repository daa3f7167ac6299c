package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Size is one of the four fixed pizza variants.
type Size string

const (
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extraLarge"
)

var ErrInvalidSize = errors.New("invalid size")

// Sizes returns the four sizes in display order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}
}

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	}
	return false
}

// ParseSize validates a raw size string coming from the API boundary.
func ParseSize(raw string) (Size, error) {
	s := Size(raw)
	if !s.Valid() {
		return "", ErrInvalidSize
	}
	return s, nil
}

// Topping is an optional add-on with a fixed price. Identity = name.
type Topping struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OfferKind tags which promotional rule a size carries.
type OfferKind string

const (
	// OfferNone means the size has an offer slot but no promo wired.
	OfferNone OfferKind = "NONE"

	// OfferMediumCombo is the two-topping flat / four-topping pair promo.
	OfferMediumCombo OfferKind = "MEDIUM_COMBO"

	// OfferLargeCombo is the double-points percentage discount.
	OfferLargeCombo OfferKind = "LARGE_COMBO"
)

// OfferRule is the per-size promo configuration. Only the fields for
// the rule's Kind are meaningful; the rest stay zero.
type OfferRule struct {
	Kind OfferKind `json:"kind"`

	// MEDIUM_COMBO: flat per-item price when exactly two toppings are
	// checked, and the per-pair rate when exactly four are checked.
	TwoToppingFlat      decimal.Decimal `json:"two_topping_flat,omitempty"`
	FourToppingPairRate decimal.Decimal `json:"four_topping_pair_rate,omitempty"`

	// LARGE_COMBO: toppings that count double toward the four promo
	// points, and the fractional multiplier applied when approved.
	DoubleToppings []string        `json:"double_toppings,omitempty"`
	Multiplier     decimal.Decimal `json:"multiplier,omitempty"`
}
