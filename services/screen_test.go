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

func callbacks(c ScreenContent) []string {
	var out []string
	for _, row := range c.Buttons {
		for _, b := range row {
			if b.CallbackData != "" {
				out = append(out, b.CallbackData)
			}
		}
	}
	return out
}

func urls(c ScreenContent) []string {
	var out []string
	for _, row := range c.Buttons {
		for _, b := range row {
			if b.URL != "" {
				out = append(out, b.URL)
			}
		}
	}
	return out
}

func renderOpts() RenderOptions {
	return RenderOptions{Lang: lang.En, BusinessPhone: "972500000000", ShareLink: "https://t.me/kitchen_bot", Now: time.Now()}
}

func TestRenderSession_Home(t *testing.T) {
	s := newTestSession(t)
	c := RenderSession(s, renderOpts())

	assert.Contains(t, c.Text, lang.T(lang.En, "home_title"))
	assert.Contains(t, callbacks(c), CbNav+string(ViewMenu))
	assert.Contains(t, urls(c), "https://wa.me/972500000000")
	assert.NotContains(t, callbacks(c), CbAdmin, "admin toggle hidden unless allowed")
}

func TestRenderSession_MenuMarksSoldOut(t *testing.T) {
	s := newTestSession(t)
	s.SelectDay(models.Monday)
	require.True(t, s.Navigate(ViewMenu))
	s.ToggleAdmin()
	require.True(t, s.ToggleAvailability("2"))
	s.ToggleAdmin()

	c := RenderSession(s, renderOpts())
	assert.Contains(t, c.Text, "Monday")
	assert.Contains(t, c.Text, lang.T(lang.En, "sold_out"))
	assert.NotContains(t, callbacks(c), CbAdd+"2")
	assert.Contains(t, callbacks(c), CbNoop)
}

func TestRenderSession_CartBadgeAndCheckout(t *testing.T) {
	s := newTestSession(t)
	toCheckout(t, s)
	s.UpdateQuantity("1", 2)

	opts := renderOpts()
	opts.ShowAdminToggle = true
	c := RenderSession(s, opts)
	assert.Contains(t, callbacks(c), CbAdmin)
	assert.NotContains(t, callbacks(c), CbSend, "send hidden until the form is filled")
	assert.Contains(t, c.Text, lang.T(lang.En, "fill_required"))

	var badge string
	for _, row := range c.Buttons {
		for _, b := range row {
			if b.CallbackData == CbNav+string(ViewCart) && strings.HasPrefix(b.Text, "🛒") {
				badge = b.Text
			}
		}
	}
	assert.Equal(t, "🛒 Cart (3)", badge)

	s.SetCustomerName("Dana")
	s.SetPhone("050")
	c = RenderSession(s, opts)
	assert.Contains(t, callbacks(c), CbSend)
	assert.NotContains(t, callbacks(c), CbField+FieldAddress, "address only asked for delivery")

	s.SetMethod(models.MethodDelivery)
	c = RenderSession(s, opts)
	assert.Contains(t, callbacks(c), CbField+FieldAddress)
	assert.NotContains(t, callbacks(c), CbSend)
	assert.Contains(t, c.Text, "₪230")
}

func TestRenderSession_SuccessHasWhatsAppLink(t *testing.T) {
	s := newTestSession(t)
	toCheckout(t, s)
	s.SetCustomerName("Dana")
	s.SetPhone("050")
	h, ok := s.SubmitOrder(lang.En, "972500000000")
	require.True(t, ok)

	c := RenderSession(s, renderOpts())
	assert.Equal(t, []string{h.Link}, urls(c))
	assert.Equal(t, []string{CbNav + string(ViewHome)}, callbacks(c))
}

func TestRenderSession_Admin(t *testing.T) {
	s := newTestSession(t)
	s.ToggleAdmin()
	opts := renderOpts()
	opts.ShowAdminToggle = true

	c := RenderSession(s, opts)
	assert.Contains(t, callbacks(c), CbAdmToggle+"1")
	assert.Contains(t, callbacks(c), CbAdmEdit+"4")
	assert.Contains(t, callbacks(c), CbAdmAdd+string(models.CategoryDessert))
	assert.NotContains(t, c.Text, opts.ShareLink)

	s.MarkLinkCopied(opts.Now)
	c = RenderSession(s, opts)
	assert.Contains(t, c.Text, opts.ShareLink)

	require.True(t, s.StartEdit("1"))
	c = RenderSession(s, opts)
	assert.Contains(t, callbacks(c), CbEditSave)
	assert.Contains(t, callbacks(c), CbEditField+FieldItemPrice)
}
