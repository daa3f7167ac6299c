package session

import (
	"time"

	"github.com/kryshchuk/super-pizza-order/internal/pricing"
)

// Session is one live ordering session: a pricing engine bound to the
// catalog that was active when the session opened. Sessions are
// in-memory only and die with the process.
type Session struct {
	ID        string          `json:"id"`
	Engine    *pricing.Engine `json:"-"`
	CreatedAt time.Time       `json:"created_at"`
}
