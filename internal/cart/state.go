// Package cart is the storefront state container. State changes only
// through actions applied by Reduce; Store serializes dispatches and runs
// the single side effect, order submission.
package cart

import (
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/shopspring/decimal"
)

type State struct {
	Entries     []models.MenuItem
	ActiveTab   string
	Query       string
	OrderStatus string
	Session     *models.Session
	Submitting  bool
}

func (s State) SignedIn() bool {
	return s.Session != nil
}

// Total is the sum of entry prices. Prices are summed as decimals so that
// fractional prices do not drift.
func Total(entries []models.MenuItem) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(decimal.NewFromFloat(e.Price))
	}
	return total
}

type Action interface {
	apply(State) State
}

// AddItem appends a copy of Item. Duplicates are kept as separate entries.
type AddItem struct{ Item models.MenuItem }

// RemoveItem drops every entry with ID.
type RemoveItem struct{ ID int }

type SetTab struct{ Category string }

type SetQuery struct{ Query string }

type SignIn struct{ Session models.Session }

type SignOut struct{}

type OrderSubmitted struct{}

type OrderSucceeded struct{ Status string }

type OrderFailed struct{}

func (a AddItem) apply(s State) State {
	entries := make([]models.MenuItem, len(s.Entries), len(s.Entries)+1)
	copy(entries, s.Entries)
	s.Entries = append(entries, a.Item)
	return s
}

func (a RemoveItem) apply(s State) State {
	entries := make([]models.MenuItem, 0, len(s.Entries))
	for _, e := range s.Entries {
		if e.ID != a.ID {
			entries = append(entries, e)
		}
	}
	s.Entries = entries
	return s
}

func (a SetTab) apply(s State) State {
	s.ActiveTab = a.Category
	return s
}

func (a SetQuery) apply(s State) State {
	s.Query = a.Query
	return s
}

func (a SignIn) apply(s State) State {
	session := a.Session
	s.Session = &session
	return s
}

func (SignOut) apply(s State) State {
	s.Session = nil
	return s
}

func (OrderSubmitted) apply(s State) State {
	s.Submitting = true
	return s
}

func (a OrderSucceeded) apply(s State) State {
	s.Entries = []models.MenuItem{}
	s.OrderStatus = a.Status
	s.Submitting = false
	return s
}

func (OrderFailed) apply(s State) State {
	s.Submitting = false
	return s
}

// Reduce returns the state after a. The input state is never mutated.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}
