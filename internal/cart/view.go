package cart

import (
	"fmt"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/catalog"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/shopspring/decimal"
)

const (
	EmptyCartMessage = "Your cart is empty"
	SignInPrompt     = "Sign in to start ordering"
)

// View is everything a front end needs to render one frame.
type View struct {
	Categories []string
	ActiveTab  string
	Query      string
	Items      []models.MenuItem
	Cart       []models.MenuItem
	Total      decimal.Decimal
	Welcome    string
	CartLine   string
	StatusLine string
	CanAdd     bool
	CanOrder   bool
	Submitting bool
}

func Render(s State, cat *catalog.Catalog) View {
	v := View{
		Categories: cat.CategoryNames(),
		ActiveTab:  s.ActiveTab,
		Query:      s.Query,
		Items:      cat.Filter(s.ActiveTab, s.Query),
		Cart:       append([]models.MenuItem(nil), s.Entries...),
		Total:      Total(s.Entries),
		CanAdd:     s.SignedIn(),
		CanOrder:   s.SignedIn() && len(s.Entries) > 0 && !s.Submitting,
		Submitting: s.Submitting,
	}
	if s.SignedIn() {
		v.Welcome = fmt.Sprintf("Welcome, %s", s.Session.User.Name)
	} else {
		v.Welcome = SignInPrompt
	}
	if len(s.Entries) == 0 {
		v.CartLine = EmptyCartMessage
	} else {
		v.CartLine = fmt.Sprintf("%d item(s), total ₹%s", len(s.Entries), v.Total.StringFixed(2))
	}
	if s.OrderStatus != "" {
		v.StatusLine = "Order Status: " + s.OrderStatus
	}
	return v
}
