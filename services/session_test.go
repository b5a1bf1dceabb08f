package services

import (
	"strings"
	"testing"
	"time"

	"home-catering/lang"
	"home-catering/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(testCatalog(t), models.Tuesday)
}

// toCheckout walks Home → Menu → Cart → Checkout with one couscous in the cart.
func toCheckout(t *testing.T, s *Session) {
	t.Helper()
	require.True(t, s.Navigate(ViewMenu))
	require.True(t, s.AddToCart("1"))
	require.True(t, s.Navigate(ViewCart))
	require.True(t, s.Navigate(ViewCheckout))
}

func TestDayOf(t *testing.T) {
	tests := []struct {
		date string
		want models.Day
	}{
		{"2026-10-11", models.Sunday},
		{"2026-10-13", models.Tuesday},
		{"2026-10-16", models.Friday},
		{"2026-10-17", models.Saturday},
	}
	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, DayOf(d), tt.date)
	}
}

func TestSession_Navigate(t *testing.T) {
	tests := []struct {
		name string
		from []View // path from Home
		to   View
		want bool
	}{
		{"home to menu", nil, ViewMenu, true},
		{"home to checkout", nil, ViewCheckout, false},
		{"home to success", nil, ViewSuccess, false},
		{"menu to cart", []View{ViewMenu}, ViewCart, true},
		{"cart back to menu", []View{ViewMenu, ViewCart}, ViewMenu, true},
		{"empty cart to checkout", []View{ViewMenu, ViewCart}, ViewCheckout, false},
		{"menu to success", []View{ViewMenu}, ViewSuccess, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			for _, v := range tt.from {
				require.True(t, s.Navigate(v))
			}
			before := s.View()
			got := s.Navigate(tt.to)
			assert.Equal(t, tt.want, got)
			if !got {
				assert.Equal(t, before, s.View())
			}
		})
	}
}

func TestSession_CheckoutBackToCart(t *testing.T) {
	s := newTestSession(t)
	toCheckout(t, s)
	assert.True(t, s.Navigate(ViewCart))
	assert.Equal(t, ViewCart, s.View())
}

func TestSession_AddToCartGates(t *testing.T) {
	s := newTestSession(t)
	assert.False(t, s.AddToCart("missing"))

	s.ToggleAdmin()
	require.True(t, s.ToggleAvailability("2"))
	s.ToggleAdmin()

	assert.False(t, s.AddToCart("2"), "sold-out item must not be added")
	assert.True(t, s.Cart().IsEmpty())
}

func TestSession_SubmitOrder(t *testing.T) {
	s := newTestSession(t)
	toCheckout(t, s)
	s.UpdateQuantity("1", 1)
	s.SetMethod(models.MethodDelivery)

	_, ok := s.SubmitOrder(lang.He, "972500000000")
	assert.False(t, ok, "send is disabled without name and phone")
	assert.Equal(t, ViewCheckout, s.View())

	s.SetCustomerName("  Dana ")
	s.SetPhone("050-1234567")
	assert.False(t, s.CanSubmit(), "delivery needs an address")
	s.SetAddress("Herzl 1")
	require.True(t, s.CanSubmit())

	h, ok := s.SubmitOrder(lang.He, "972500000000")
	require.True(t, ok)
	assert.Equal(t, int64(65*2+35), h.GrandTotal)
	assert.Contains(t, h.Message, "Dana")
	assert.Contains(t, h.Message, "₪130")
	assert.Contains(t, h.Link, "https://wa.me/972500000000?text=")
	assert.Equal(t, ViewSuccess, s.View())

	last, ok := s.LastHandoff()
	require.True(t, ok)
	assert.Equal(t, h, last)
}

func TestSession_SuccessToHomeClearsCartKeepsDetails(t *testing.T) {
	s := newTestSession(t)
	toCheckout(t, s)
	s.SetCustomerName("Dana")
	s.SetPhone("050")
	s.SetNotes("ring twice")
	_, ok := s.SubmitOrder(lang.En, "972500000000")
	require.True(t, ok)

	assert.False(t, s.Navigate(ViewMenu), "success only leads home")
	require.True(t, s.Navigate(ViewHome))

	assert.True(t, s.Cart().IsEmpty())
	assert.Equal(t, models.OrderDetails{
		CustomerName: "Dana",
		Phone:        "050",
		Method:       models.MethodPickup,
		Notes:        "ring twice",
	}, s.Details())
	_, ok = s.LastHandoff()
	assert.False(t, ok)

	// a repeat order needs only a new cart
	toCheckout(t, s)
	_, ok = s.SubmitOrder(lang.En, "972500000000")
	assert.True(t, ok)
}

func TestSession_AdminTogglePreservesView(t *testing.T) {
	s := newTestSession(t)
	require.True(t, s.Navigate(ViewMenu))
	require.True(t, s.Navigate(ViewCart))

	s.ToggleAdmin()
	assert.True(t, s.IsAdmin())
	assert.Equal(t, ViewCart, s.View())

	s.ToggleAdmin()
	assert.False(t, s.IsAdmin())
	assert.Equal(t, ViewCart, s.View())
}

func TestSession_EditFlow(t *testing.T) {
	s := newTestSession(t)
	assert.False(t, s.StartEdit("1"), "editor is only open in admin mode")

	s.ToggleAdmin()
	require.True(t, s.StartEdit("1"))
	s.EditName("Couscous")
	s.EditPrice("70abc")
	s.EditDescription("new")

	// The catalog is untouched until the draft is saved.
	it, _ := s.Catalog().Get("1")
	assert.Equal(t, int64(65), it.Price)

	require.True(t, s.SaveEdit())
	it, _ = s.Catalog().Get("1")
	assert.Equal(t, "Couscous", it.Name)
	assert.Equal(t, int64(70), it.Price)
	assert.Equal(t, "new", it.Description)
	_, editing := s.Editing()
	assert.False(t, editing)

	require.True(t, s.StartEdit("2"))
	s.EditPrice("999")
	s.CancelEdit()
	it, _ = s.Catalog().Get("2")
	assert.Equal(t, int64(55), it.Price)
	assert.False(t, s.SaveEdit())
}

func TestSession_LinkCopiedResets(t *testing.T) {
	s := newTestSession(t)
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	assert.False(t, s.LinkCopied(now))

	s.MarkLinkCopied(now)
	assert.True(t, s.LinkCopied(now.Add(time.Second)))
	assert.False(t, s.LinkCopied(now.Add(CopyFlagDuration)))
}

func TestSession_SelectIgnoresUnknownValues(t *testing.T) {
	s := newTestSession(t)
	s.SelectDay("Saturday")
	s.SelectCategory("soup")
	assert.Equal(t, models.Tuesday, s.Day())
	assert.Equal(t, models.CategoryMainCourse, s.Category())

	s.SelectDay(models.Friday)
	s.SelectCategory(models.CategorySideDish)
	assert.Equal(t, models.Friday, s.Day())
	assert.Equal(t, models.CategorySideDish, s.Category())
}

func TestSession_VisibleItems(t *testing.T) {
	s := newTestSession(t) // Tuesday, main courses
	var ids []string
	for _, it := range s.VisibleItems() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"1"}, ids)

	s.SelectDay(models.Monday)
	ids = nil
	for _, it := range s.VisibleItems() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"2"}, ids)
}

func TestSession_SaturdayShowsFullWeekItemsOnly(t *testing.T) {
	sat := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	s := NewSession(testCatalog(t), DayOf(sat))
	require.Equal(t, models.Saturday, s.Day())

	assert.Empty(t, s.VisibleItems(), "no main course is served all week")

	s.SelectCategory(models.CategorySalad)
	var ids []string
	for _, it := range s.VisibleItems() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"3"}, ids)

	require.True(t, s.Navigate(ViewMenu))
	screen := RenderSession(s, RenderOptions{Lang: lang.En, Now: sat})
	assert.Contains(t, screen.Text, "Menu for Saturday")
	for _, row := range screen.Buttons {
		for _, btn := range row {
			if strings.HasPrefix(btn.CallbackData, CbDay) {
				assert.NotContains(t, btn.Text, "•", "no day tab is highlighted on Saturday")
			}
		}
	}

	// the day tabs can move off Saturday but never back to it
	s.SelectDay(models.Sunday)
	assert.Equal(t, models.Sunday, s.Day())
	s.SelectDay(models.Saturday)
	assert.Equal(t, models.Sunday, s.Day())
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"65", 65},
		{" 40 ", 40},
		{"12abc", 12},
		{"-5", -5},
		{"abc", 0},
		{"", 0},
		{"-", 0},
	}
	for _, tt := range tests {
		if got := ParsePrice(tt.in); got != tt.want {
			t.Errorf("ParsePrice(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
