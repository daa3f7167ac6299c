package pricing

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kryshchuk/super-pizza-order/internal/catalog"
)

// Engine is the reactive pricing pipeline for one ordering session.
// Every accepted mutation synchronously recomputes contributions,
// offer evaluation, and the line total for exactly the affected size,
// then notifies that size's subscribers — nothing is deferred, so a
// caller always reads totals consistent with the last mutation.
//
// The four size pipelines are independent; a change to one size never
// touches another's derived state. The mutex only serializes input
// events (HTTP handlers may call in from concurrent goroutines).
type Engine struct {
	mu          sync.Mutex
	catalog     *catalog.Catalog
	state       *selectionState
	totals      map[catalog.Size]decimal.Decimal
	subscribers map[catalog.Size][]func(decimal.Decimal)
}

// NewEngine binds an engine to a catalog. All totals start at an
// explicit 0 before any input arrives.
func NewEngine(cat *catalog.Catalog) *Engine {
	totals := make(map[catalog.Size]decimal.Decimal, 4)
	for _, size := range catalog.Sizes() {
		totals[size] = decimal.Zero
	}
	return &Engine{
		catalog:     cat,
		state:       newSelectionState(cat),
		totals:      totals,
		subscribers: make(map[catalog.Size][]func(decimal.Decimal)),
	}
}

// SetToppingFlag sets a (topping, size) flag. Invalid input is
// rejected before any state changes.
func (e *Engine) SetToppingFlag(topping string, size catalog.Size, value bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.validate(topping, size); err != nil {
		return err
	}

	e.state.flags[flagKey{topping, size}] = value
	e.recompute(size)
	return nil
}

// ToggleTopping flips a (topping, size) flag and returns the new
// value. Toggling twice restores the original derived state.
func (e *Engine) ToggleTopping(topping string, size catalog.Size) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.validate(topping, size); err != nil {
		return false, err
	}

	key := flagKey{topping, size}
	e.state.flags[key] = !e.state.flags[key]
	e.recompute(size)
	return e.state.flags[key], nil
}

// SetItemCount sets the number of items for a size. Negative counts
// are rejected and leave the state untouched.
func (e *Engine) SetItemCount(size catalog.Size, count int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !size.Valid() {
		return ErrInvalidSize
	}
	if count < 0 {
		return ErrInvalidCount
	}

	e.state.counts[size] = count
	e.recompute(size)
	return nil
}

// ItemCount returns the current item count for a size.
func (e *Engine) ItemCount(size catalog.Size) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.counts[size]
}

// Total returns the current payable total for one size.
func (e *Engine) Total(size catalog.Size) (decimal.Decimal, error) {
	if !size.Valid() {
		return decimal.Zero, ErrInvalidSize
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totals[size], nil
}

// Totals returns the current payable total for every size.
func (e *Engine) Totals() map[catalog.Size]decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[catalog.Size]decimal.Decimal, len(e.totals))
	for size, total := range e.totals {
		out[size] = total
	}
	return out
}

// Contributions returns the checked toppings of a size with their
// prices attached, in catalog order.
func (e *Engine) Contributions(size catalog.Size) ([]ToppingContribution, error) {
	if !size.Valid() {
		return nil, ErrInvalidSize
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.contributions(size), nil
}

// Evaluate runs offer evaluation for a size against the current state.
func (e *Engine) Evaluate(size catalog.Size) (OfferResult, error) {
	if !size.Valid() {
		return OfferResult{}, ErrInvalidSize
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return evaluateOffer(e.catalog, size, e.contributions(size), e.state.counts[size]), nil
}

// Quote returns the itemized breakdown for a size.
func (e *Engine) Quote(size catalog.Size) (Quote, error) {
	if !size.Valid() {
		return Quote{}, ErrInvalidSize
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	contribs := e.contributions(size)
	result := evaluateOffer(e.catalog, size, contribs, e.state.counts[size])

	return Quote{
		Size:          size,
		BasePrice:     e.catalog.BasePrice(size),
		Contributions: contribs,
		ItemCount:     e.state.counts[size],
		Kind:          result.Kind,
		Total:         result.Total,
	}, nil
}

// Subscribe registers a callback invoked with the new total after
// every accepted mutation of the given size. Callbacks run
// synchronously inside the mutation, in registration order.
func (e *Engine) Subscribe(size catalog.Size, fn func(total decimal.Decimal)) error {
	if !size.Valid() {
		return ErrInvalidSize
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers[size] = append(e.subscribers[size], fn)
	return nil
}

func (e *Engine) validate(topping string, size catalog.Size) error {
	if !size.Valid() {
		return ErrInvalidSize
	}
	if !e.catalog.HasTopping(topping) {
		return ErrUnknownTopping
	}
	return nil
}

// contributions projects the selection state of one size onto the
// catalog: one entry per checked topping, catalog order, unchecked
// toppings absent. Caller holds the lock.
func (e *Engine) contributions(size catalog.Size) []ToppingContribution {
	var out []ToppingContribution
	for _, t := range e.catalog.Toppings() {
		if !e.state.flags[flagKey{t.Name, size}] {
			continue
		}
		price, _ := e.catalog.Price(t.Name, size)
		out = append(out, ToppingContribution{Topping: t, Price: price})
	}
	return out
}

// recompute propagates a mutation through the affected size's
// pipeline: contribution list, offer evaluation, total, subscribers.
// Caller holds the lock.
func (e *Engine) recompute(size catalog.Size) {
	result := evaluateOffer(e.catalog, size, e.contributions(size), e.state.counts[size])
	e.totals[size] = result.Total

	for _, fn := range e.subscribers[size] {
		fn(result.Total)
	}
}
