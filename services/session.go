package services

import (
	"strconv"
	"strings"
	"time"

	"home-catering/models"
)

type View string

const (
	ViewHome     View = "home"
	ViewMenu     View = "menu"
	ViewCart     View = "cart"
	ViewCheckout View = "checkout"
	ViewSuccess  View = "success"
)

// CopyFlagDuration is how long the "link copied" confirmation stays on.
const CopyFlagDuration = 2 * time.Second

// transitions lists every screen change a user can ask for. Checkout to
// Success is not here: only SubmitOrder takes that edge.
var transitions = map[View][]View{
	ViewHome:     {ViewMenu, ViewCart},
	ViewMenu:     {ViewHome, ViewCart},
	ViewCart:     {ViewHome, ViewMenu, ViewCheckout},
	ViewCheckout: {ViewHome, ViewMenu, ViewCart},
	ViewSuccess:  {ViewHome},
}

// Session is the whole state of one customer's ordering flow. The catalog is
// shared; everything else belongs to the session.
type Session struct {
	catalog  *Catalog
	view     View
	admin    bool
	cart     Cart
	details  models.OrderDetails
	day      models.Day
	category models.Category
	editing  *models.MenuItem
	handoff  *OrderHandoff
	copiedAt time.Time
}

func NewSession(catalog *Catalog, today models.Day) *Session {
	return &Session{
		catalog:  catalog,
		view:     ViewHome,
		details:  models.OrderDetails{Method: models.MethodPickup},
		day:      today,
		category: models.CategoryMainCourse,
	}
}

// DayOf maps a date to the kitchen's day, or models.Saturday on the day off.
func DayOf(t time.Time) models.Day {
	if t.Weekday() == time.Saturday {
		return models.Saturday
	}
	return models.Days[int(t.Weekday())]
}

func (s *Session) View() View {
	return s.view
}

func (s *Session) IsAdmin() bool {
	return s.admin
}

func (s *Session) Cart() *Cart {
	return &s.cart
}

func (s *Session) Details() models.OrderDetails {
	return s.details
}

func (s *Session) Day() models.Day {
	return s.day
}

func (s *Session) Category() models.Category {
	return s.category
}

func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// VisibleItems is the menu screen content for the selected day and category.
func (s *Session) VisibleItems() []models.MenuItem {
	return VisibleItems(s.catalog.Items(), s.category, s.day)
}

// Navigate moves to another screen if that edge exists. Leaving Success for
// Home empties the cart; the customer's details stay for the next order.
// Unknown edges are ignored.
func (s *Session) Navigate(to View) bool {
	if to == ViewCheckout && s.cart.IsEmpty() {
		return false
	}
	for _, v := range transitions[s.view] {
		if v != to {
			continue
		}
		if s.view == ViewSuccess && to == ViewHome {
			s.cart.Clear()
			s.handoff = nil
		}
		s.view = to
		return true
	}
	return false
}

// ToggleAdmin switches the catalog editor on or off. The current screen is
// kept and comes back when admin mode is left.
func (s *Session) ToggleAdmin() {
	s.admin = !s.admin
	s.editing = nil
}

func (s *Session) SelectDay(d models.Day) {
	if _, ok := models.ParseDay(string(d)); ok {
		s.day = d
	}
}

func (s *Session) SelectCategory(c models.Category) {
	if _, ok := models.ParseCategory(string(c)); ok {
		s.category = c
	}
}

// AddToCart adds one unit of itemID. Unknown and sold-out items are ignored.
func (s *Session) AddToCart(itemID string) bool {
	item, ok := s.catalog.Get(itemID)
	if !ok || !item.IsAvailable {
		return false
	}
	s.cart.Add(item)
	return true
}

func (s *Session) RemoveFromCart(itemID string) {
	s.cart.Remove(itemID)
}

func (s *Session) UpdateQuantity(itemID string, delta int) {
	s.cart.SetQuantityDelta(itemID, delta)
}

func (s *Session) SetMethod(m models.FulfillmentMethod) {
	if m == models.MethodPickup || m == models.MethodDelivery {
		s.details.Method = m
	}
}

func (s *Session) SetCustomerName(v string) {
	s.details.CustomerName = strings.TrimSpace(v)
}

func (s *Session) SetPhone(v string) {
	s.details.Phone = strings.TrimSpace(v)
}

func (s *Session) SetAddress(v string) {
	s.details.Address = strings.TrimSpace(v)
}

func (s *Session) SetNotes(v string) {
	s.details.Notes = strings.TrimSpace(v)
}

func (s *Session) CanSubmit() bool {
	return s.view == ViewCheckout && !s.cart.IsEmpty() && CanSubmit(s.details)
}

func (s *Session) GrandTotal() int64 {
	return GrandTotal(&s.cart, s.details.Method)
}

// OrderHandoff is what goes to the business: the message, its total and the
// deep link that opens it in WhatsApp.
type OrderHandoff struct {
	Message    string
	GrandTotal int64
	Link       string
}

// SubmitOrder composes the order and moves to Success. It does nothing
// unless the send action is enabled.
func (s *Session) SubmitOrder(langCode, businessPhone string) (OrderHandoff, bool) {
	if !s.CanSubmit() {
		return OrderHandoff{}, false
	}
	total := s.GrandTotal()
	msg := FormatOrderMessage(langCode, s.details, &s.cart, total)
	h := OrderHandoff{
		Message:    msg,
		GrandTotal: total,
		Link:       WhatsAppLink(businessPhone, msg),
	}
	s.handoff = &h
	s.view = ViewSuccess
	return h, true
}

// LastHandoff is the order sent from this session, until Home is reached again.
func (s *Session) LastHandoff() (OrderHandoff, bool) {
	if s.handoff == nil {
		return OrderHandoff{}, false
	}
	return *s.handoff, true
}

func (s *Session) MarkLinkCopied(now time.Time) {
	s.copiedAt = now
}

func (s *Session) LinkCopied(now time.Time) bool {
	return !s.copiedAt.IsZero() && now.Sub(s.copiedAt) < CopyFlagDuration
}

// StartEdit opens a draft of itemID in the catalog editor.
func (s *Session) StartEdit(itemID string) bool {
	if !s.admin {
		return false
	}
	item, ok := s.catalog.Get(itemID)
	if !ok {
		return false
	}
	s.editing = &item
	return true
}

func (s *Session) Editing() (models.MenuItem, bool) {
	if s.editing == nil {
		return models.MenuItem{}, false
	}
	return cloneItem(*s.editing), true
}

func (s *Session) EditName(v string) {
	if s.editing != nil {
		s.editing.Name = v
	}
}

func (s *Session) EditDescription(v string) {
	if s.editing != nil {
		s.editing.Description = v
	}
}

// EditPrice takes the price as typed. Whatever does not parse as a whole
// number becomes 0; negative numbers are kept.
func (s *Session) EditPrice(v string) {
	if s.editing != nil {
		s.editing.Price = ParsePrice(v)
	}
}

// SaveEdit writes the draft to the catalog and closes the editor.
func (s *Session) SaveEdit() bool {
	if s.editing == nil {
		return false
	}
	changed := s.catalog.UpdateItem(*s.editing)
	s.editing = nil
	return changed
}

func (s *Session) CancelEdit() {
	s.editing = nil
}

// ToggleAvailability flips an item's availability from the catalog editor.
func (s *Session) ToggleAvailability(itemID string) bool {
	if !s.admin {
		return false
	}
	return s.catalog.ToggleAvailability(itemID)
}

// ParsePrice reads the leading integer of v, "12abc" is 12 and "abc" is 0.
func ParsePrice(v string) int64 {
	v = strings.TrimSpace(v)
	end := 0
	if end < len(v) && (v[end] == '-' || v[end] == '+') {
		end++
	}
	digits := end
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(v[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
