package store

import (
	"sync"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/domain"
)

// CartLine is one entry in the cart. Price, name, and image are a
// snapshot of the product at time of add; quantity is the only mutable
// field.
type CartLine struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// CartSnapshot is an immutable view of the cart after some mutation.
type CartSnapshot struct {
	Lines      []CartLine `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice int64      `json:"totalPrice"`
	Open       bool       `json:"isOpen"`
}

// Cart owns the line items and their derived totals. Totals are
// recomputed synchronously after every mutation so they never drift from
// the lines. At most one line exists per product id.
type Cart struct {
	mu         sync.Mutex
	lines      []CartLine
	totalItems int
	totalPrice int64
	open       bool
	signal
}

func NewCart() *Cart { return &Cart{} }

// Add puts the product in the cart, incrementing quantity by one if a
// line for it already exists.
func (c *Cart) Add(p domain.Product) {
	c.mu.Lock()
	if i := c.find(p.ID); i >= 0 {
		c.lines[i].Quantity++
	} else {
		c.lines = append(c.lines, CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Quantity:  1,
		})
	}
	c.recompute()
	c.mu.Unlock()
	c.emit()
}

// Remove deletes the line for productID. Removing an absent line is a
// no-op, not an error.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	c.remove(productID)
	c.recompute()
	c.mu.Unlock()
	c.emit()
}

// SetQuantity sets the exact quantity for productID. A quantity of zero
// or less removes the line.
func (c *Cart) SetQuantity(productID, quantity int) {
	c.mu.Lock()
	if quantity <= 0 {
		c.remove(productID)
	} else if i := c.find(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
	c.recompute()
	c.mu.Unlock()
	c.emit()
}

// Clear empties the cart and resets totals to zero.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.recompute()
	c.mu.Unlock()
	c.emit()
}

// ToggleSidebar flips the cart sidebar flag. Presentation only; totals
// are untouched.
func (c *Cart) ToggleSidebar() {
	c.mu.Lock()
	c.open = !c.open
	c.mu.Unlock()
	c.emit()
}

func (c *Cart) Snapshot() CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return CartSnapshot{
		Lines:      lines,
		TotalItems: c.totalItems,
		TotalPrice: c.totalPrice,
		Open:       c.open,
	}
}

func (c *Cart) find(productID int) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) remove(productID int) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) recompute() {
	items, price := 0, int64(0)
	for _, l := range c.lines {
		items += l.Quantity
		price += l.Price * int64(l.Quantity)
	}
	c.totalItems = items
	c.totalPrice = price
}
