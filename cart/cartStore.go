package cart

import (
	"errors"
	"sync"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidItem     = errors.New("menu item is missing an id, name or price")
)

// Store keeps one cart per session. Sessions are keyed by the
// authenticated user id; a cart is created lazily on first access and
// torn down when the session ends or the order is placed.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Cart returns the cart for the given session, creating it if needed.
func (s *Store) Cart(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	return c
}

// Drop discards the session's cart entirely.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Cart holds the lines a session has selected but not yet ordered.
// It is purely in-memory; no operation on it touches the database.
type Cart struct {
	mu    sync.Mutex
	lines []models.CartLine
}

// Add puts quantity units of item into the cart. If a line for the item
// already exists its quantity is incremented, so the cart never carries
// two lines for the same menu item id. Non-positive quantities are
// rejected here; use UpdateQuantity to drive a line to removal.
func (c *Cart) Add(item models.MenuItem, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if item.Menu_item_id == "" || item.Name == nil || item.Price == nil {
		return ErrInvalidItem
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItem.Menu_item_id == item.Menu_item_id {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, models.CartLine{MenuItem: item, Quantity: quantity})
	return nil
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less is
// a removal request, not an error. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(menuItemID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItem.Menu_item_id == menuItemID {
			if quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = quantity
			}
			return
		}
	}
}

// Remove deletes the line for menuItemID; no-op if absent.
func (c *Cart) Remove(menuItemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItem.Menu_item_id == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a confirmed order write or an
// explicit reset.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalAmount is recomputed from the current line set on every read, so
// it can never drift from the lines it is derived from.
func (c *Cart) TotalAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.LineTotal()
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}
