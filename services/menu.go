package services

import (
	"fmt"

	"home-catering/models"

	"github.com/google/uuid"
)

// Catalog holds the menu in display order. Items are never deleted.
type Catalog struct {
	items []models.MenuItem
}

func NewCatalog(items []models.MenuItem) *Catalog {
	c := &Catalog{items: make([]models.MenuItem, len(items))}
	for i, it := range items {
		c.items[i] = cloneItem(it)
	}
	return c
}

// Items returns a copy of the menu.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	for i, it := range c.items {
		out[i] = cloneItem(it)
	}
	return out
}

func (c *Catalog) Get(id string) (models.MenuItem, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return cloneItem(it), true
		}
	}
	return models.MenuItem{}, false
}

// ToggleAvailability flips IsAvailable for id. It reports whether anything
// changed; an unknown id is a no-op.
func (c *Catalog) ToggleAvailability(id string) bool {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].IsAvailable = !c.items[i].IsAvailable
			return true
		}
	}
	return false
}

// UpdateItem overwrites the stored item with the same id, every field.
// No validation is done: a negative price is stored as given.
func (c *Catalog) UpdateItem(item models.MenuItem) bool {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = cloneItem(item)
			return true
		}
	}
	return false
}

// AddItem appends a new dish offered every day and returns it.
func (c *Catalog) AddItem(name string, price int64, category models.Category) (models.MenuItem, error) {
	if _, ok := models.ParseCategory(string(category)); !ok {
		return models.MenuItem{}, fmt.Errorf("invalid category: %s", category)
	}
	if name == "" {
		return models.MenuItem{}, fmt.Errorf("name is required")
	}
	item := models.MenuItem{
		ID:            uuid.NewString(),
		Name:          name,
		Price:         price,
		Category:      category,
		IsAvailable:   true,
		AvailableDays: append([]models.Day(nil), models.Days...),
	}
	c.items = append(c.items, item)
	return cloneItem(item), nil
}

// VisibleItems returns the items of category offered on day, in menu order.
// Sold-out items stay in the list; availability only gates adding to the cart.
func VisibleItems(items []models.MenuItem, category models.Category, day models.Day) []models.MenuItem {
	var out []models.MenuItem
	for _, it := range items {
		if it.Category == category && it.OffersOn(day) {
			out = append(out, it)
		}
	}
	return out
}

func cloneItem(it models.MenuItem) models.MenuItem {
	if it.AvailableDays != nil {
		days := make([]models.Day, len(it.AvailableDays))
		copy(days, it.AvailableDays)
		it.AvailableDays = days
	}
	return it
}
