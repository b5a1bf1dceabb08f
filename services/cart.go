package services

import "home-catering/models"

// CartItem is a cart line. Name and price are copied from the menu when the
// item is first added, so later menu edits do not change an order in progress.
type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    int64           `json:"price"`
	Qty      int             `json:"qty"`
	Category models.Category `json:"category"`
}

// Subtotal is price times quantity for this line.
func (ci CartItem) Subtotal() int64 {
	return ci.Price * int64(ci.Qty)
}

// Cart keeps lines in first-add order, at most one line per item id.
type Cart struct {
	Items []CartItem `json:"items"`
}

func (c *Cart) find(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// Add puts one more unit of item in the cart. Callers must only add available items.
func (c *Cart) Add(item models.MenuItem) {
	if i := c.find(item.ID); i >= 0 {
		c.Items[i].Qty++
		return
	}
	c.Items = append(c.Items, CartItem{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Qty:      1,
		Category: item.Category,
	})
}

// Remove deletes the line for itemID, if any.
func (c *Cart) Remove(itemID string) {
	i := c.find(itemID)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// SetQuantityDelta moves the quantity by delta, never below 1.
// Reaching the floor does not remove the line; use Remove for that.
func (c *Cart) SetQuantityDelta(itemID string, delta int) {
	i := c.find(itemID)
	if i < 0 {
		return
	}
	qty := c.Items[i].Qty + delta
	if qty < 1 {
		qty = 1
	}
	c.Items[i].Qty = qty
}

func (c *Cart) Total() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.Subtotal()
	}
	return sum
}

// ItemCount is the number of units in the cart, for the cart badge.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Clear() {
	c.Items = nil
}
