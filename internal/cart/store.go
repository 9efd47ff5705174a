package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/ArchitCodes1204/campus-delivery-platform/internal/notify"
)

const (
	SignInRequiredMessage = "Please sign in to place an order"
	ItemRemovedMessage    = "Item removed from cart"
)

var (
	ErrNotSignedIn   = errors.New("not signed in")
	ErrOrderFailed   = errors.New("order failed")
	ErrOrderInFlight = errors.New("an order is already being placed")
)

// Submitter sends an order to the order endpoint.
type Submitter interface {
	PlaceOrder(ctx context.Context, req models.OrderRequest) (models.OrderConfirmation, error)
}

// Store owns the current State. Every change goes through Dispatch; the lock
// is never held across the order request.
type Store struct {
	mu        sync.Mutex
	state     State
	submitter Submitter
	notifier  notify.Notifier
}

func NewStore(initial State, submitter Submitter, notifier notify.Notifier) *Store {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	if initial.Entries == nil {
		initial.Entries = []models.MenuItem{}
	}
	return &Store{state: initial, submitter: submitter, notifier: notifier}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

func (s *Store) Add(item models.MenuItem) State {
	st := s.Dispatch(AddItem{Item: item})
	s.notifier.Success(fmt.Sprintf("%s added to cart!", item.Name))
	return st
}

// Remove drops every entry with id. The notification is shown even when
// nothing matched.
func (s *Store) Remove(id int) State {
	st := s.Dispatch(RemoveItem{ID: id})
	s.notifier.Error(ItemRemovedMessage)
	return st
}

func (s *Store) SignIn(session models.Session) State {
	return s.Dispatch(SignIn{Session: session})
}

func (s *Store) SignOut() State {
	return s.Dispatch(SignOut{})
}

// PlaceOrder submits the cart once. Without a session nothing is sent. On
// failure the cart is left as it was; on success it is emptied and the
// returned status recorded.
func (s *Store) PlaceOrder(ctx context.Context) (models.OrderConfirmation, error) {
	s.mu.Lock()
	st := s.state
	switch {
	case !st.SignedIn():
		s.mu.Unlock()
		s.notifier.Error(SignInRequiredMessage)
		return models.OrderConfirmation{}, ErrNotSignedIn
	case st.Submitting:
		s.mu.Unlock()
		return models.OrderConfirmation{}, ErrOrderInFlight
	}
	s.state = Reduce(st, OrderSubmitted{})
	s.mu.Unlock()

	req := models.OrderRequest{
		Items:    append([]models.MenuItem{}, st.Entries...),
		UserID:   st.Session.User.ID,
		UserName: st.Session.User.Name,
	}
	conf, err := s.submitter.PlaceOrder(ctx, req)
	if err != nil {
		s.Dispatch(OrderFailed{})
		s.notifier.Error(models.OrderErrorMessage)
		return models.OrderConfirmation{}, fmt.Errorf("%w: %w", ErrOrderFailed, err)
	}

	s.Dispatch(OrderSucceeded{Status: conf.Status})
	s.notifier.Success(models.OrderStatusPlaced)
	return conf, nil
}
