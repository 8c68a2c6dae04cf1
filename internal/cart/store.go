// Package cart holds the session-scoped shopping cart: the single source of
// truth for the customer's pending order.
package cart

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"doceencanto/internal/models"
)

// Repository persists a session's full line list. Load must degrade to an
// empty cart on missing or corrupt data instead of failing.
type Repository interface {
	Load(sessionID string) []models.CartItem
	Save(sessionID string, items []models.CartItem) error
}

// Store is one session's cart. Every mutation recomputes the derived totals
// implicitly (they are computed on read from the line list, which is the
// only state) and writes the full list through to the repository.
type Store struct {
	mu        sync.Mutex
	sessionID string
	items     []models.CartItem
	repo      Repository
}

// NewStore creates the cart for a session, adopting any previously persisted
// line list as the starting state.
func NewStore(repo Repository, sessionID string) *Store {
	s := &Store{repo: repo, sessionID: sessionID}
	if repo != nil {
		s.items = repo.Load(sessionID)
	}
	return s
}

// AddItem merges the entry into an existing line when both the product id
// and the observation match, otherwise appends a new line with a fresh line
// key. Quantity defaults to 1. Returns the resulting line.
func (s *Store) AddItem(entry models.CartItem) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Quantity <= 0 {
		entry.Quantity = 1
	}
	for i := range s.items {
		if s.items[i].ProductID == entry.ProductID && s.items[i].Observation == entry.Observation {
			s.items[i].Quantity += entry.Quantity
			s.persist()
			return s.items[i]
		}
	}
	entry.Key = uuid.NewString()
	s.items = append(s.items, entry)
	s.persist()
	return entry
}

// UpdateQuantity sets the quantity of the line with the given key. A
// quantity of zero or less removes the line. Returns false when no line has
// the key; the cart is left untouched in that case.
func (s *Store) UpdateQuantity(key string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Key != key {
			continue
		}
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		s.persist()
		return true
	}
	return false
}

// UpdateObservation replaces the observation on the line with the given key.
// An empty string is valid and means "no observation".
func (s *Store) UpdateObservation(key, observation string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Key == key {
			s.items[i].Observation = observation
			s.persist()
			return true
		}
	}
	return false
}

// RemoveItem deletes the line with the given key.
func (s *Store) RemoveItem(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Key == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns a snapshot of the cart lines in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the exact sum of line subtotals. Rounding to currency
// precision happens only at display time.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// persist writes the full line list through to the repository. Callers hold
// the mutex. Persistence failures are logged, never surfaced: the in-memory
// cart stays authoritative for the session.
func (s *Store) persist() {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(s.sessionID, s.items); err != nil {
		log.Printf("cart: persisting session %s: %v", s.sessionID, err)
	}
}
