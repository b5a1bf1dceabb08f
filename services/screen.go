package services

import (
	"fmt"
	"strings"
	"time"

	"home-catering/lang"
	"home-catering/models"
)

// ScreenButton is one inline button (text + callback data or url).
type ScreenButton struct {
	Text         string
	CallbackData string
	URL          string // if set, use as URL button instead of callback
}

// ScreenContent is the text and inline keyboard of one screen.
type ScreenContent struct {
	Text    string
	Buttons [][]ScreenButton
}

// RenderOptions carries what the screens need beyond the session itself.
type RenderOptions struct {
	Lang            string
	BusinessPhone   string
	ShareLink       string
	ShowAdminToggle bool
	Now             time.Time
}

// Callback data prefixes understood by the bot.
const (
	CbNav        = "nav:"
	CbDay        = "day:"
	CbCategory   = "cat:"
	CbAdd        = "add:"
	CbInc        = "inc:"
	CbDec        = "dec:"
	CbRemove     = "rm:"
	CbMethod     = "method:"
	CbField      = "field:"
	CbSend       = "send"
	CbAdmin      = "admin"
	CbAdmToggle  = "adm_toggle:"
	CbAdmEdit    = "adm_edit:"
	CbAdmShare   = "adm_share"
	CbAdmAdd     = "adm_add:"
	CbEditField  = "edit_field:"
	CbEditSave   = "edit_save"
	CbEditCancel = "edit_cancel"
	CbNoop       = "noop"
)

// Form fields the bot asks the user to type.
const (
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldNotes       = "notes"
	FieldItemName    = "item_name"
	FieldItemPrice   = "item_price"
	FieldItemDesc    = "item_desc"
	FieldNewItemSpec = "new_item"
)

func categoryLabel(l string, c models.Category) string {
	return lang.T(l, "cat_"+string(c))
}

func dayLabel(l string, d models.Day) string {
	return lang.T(l, "day_"+string(d))
}

func selected(label string, on bool) string {
	if on {
		return "• " + label + " •"
	}
	return label
}

// RenderSession returns the screen for the session's current state.
func RenderSession(s *Session, opts RenderOptions) ScreenContent {
	var c ScreenContent
	switch {
	case s.IsAdmin():
		if item, ok := s.Editing(); ok {
			c = BuildEditScreen(item, opts.Lang)
		} else {
			c = BuildAdminScreen(s.Catalog().Items(), s.LinkCopied(opts.Now), opts)
		}
	case s.View() == ViewMenu:
		c = BuildMenuScreen(s, opts.Lang)
	case s.View() == ViewCart:
		c = BuildCartScreen(s.Cart(), opts.Lang)
	case s.View() == ViewCheckout:
		c = BuildCheckoutScreen(s, opts.Lang)
	case s.View() == ViewSuccess:
		h, _ := s.LastHandoff()
		c = BuildSuccessScreen(h, opts.Lang)
	default:
		c = BuildHomeScreen(opts)
	}
	if row := navRow(s, opts); len(row) > 0 {
		c.Buttons = append(c.Buttons, row)
	}
	return c
}

func navRow(s *Session, opts RenderOptions) []ScreenButton {
	var row []ScreenButton
	if !s.IsAdmin() && s.View() != ViewSuccess {
		row = append(row, ScreenButton{Text: lang.T(opts.Lang, "cart_button", s.Cart().ItemCount()), CallbackData: CbNav + string(ViewCart)})
	}
	if opts.ShowAdminToggle {
		label := lang.T(opts.Lang, "admin_on")
		if s.IsAdmin() {
			label = lang.T(opts.Lang, "admin_off")
		}
		row = append(row, ScreenButton{Text: label, CallbackData: CbAdmin})
	}
	return row
}

func BuildHomeScreen(opts RenderOptions) ScreenContent {
	text := lang.T(opts.Lang, "home_title") + "\n\n" + lang.T(opts.Lang, "home_subtitle")
	return ScreenContent{
		Text: text,
		Buttons: [][]ScreenButton{
			{{Text: lang.T(opts.Lang, "to_menu"), CallbackData: CbNav + string(ViewMenu)}},
			{{Text: lang.T(opts.Lang, "contact"), URL: WhatsAppLink(opts.BusinessPhone, "")}},
		},
	}
}

func BuildMenuScreen(s *Session, l string) ScreenContent {
	items := s.VisibleItems()
	var b strings.Builder
	b.WriteString(lang.T(l, "menu_header", dayLabel(l, s.Day())))
	b.WriteString("\n" + categoryLabel(l, s.Category()) + "\n")
	if len(items) == 0 {
		b.WriteString("\n" + lang.T(l, "menu_empty"))
	}
	for _, it := range items {
		fmt.Fprintf(&b, "\n%s — ₪%d\n", it.Name, it.Price)
		if it.Description != "" {
			b.WriteString(it.Description + "\n")
		}
		if !it.IsAvailable {
			b.WriteString("⛔ " + lang.T(l, "sold_out") + "\n")
		}
	}

	var rows [][]ScreenButton
	var dayRow []ScreenButton
	for i, d := range models.Days {
		dayRow = append(dayRow, ScreenButton{Text: selected(dayLabel(l, d), d == s.Day()), CallbackData: CbDay + string(d)})
		if i%3 == 2 {
			rows = append(rows, dayRow)
			dayRow = nil
		}
	}
	var catRow []ScreenButton
	for _, c := range models.BrowseCategories {
		catRow = append(catRow, ScreenButton{Text: selected(categoryLabel(l, c), c == s.Category()), CallbackData: CbCategory + string(c)})
	}
	rows = append(rows, catRow)
	for _, it := range items {
		if it.IsAvailable {
			rows = append(rows, []ScreenButton{{Text: fmt.Sprintf("➕ %s — %s", it.Name, lang.T(l, "add_to_cart")), CallbackData: CbAdd + it.ID}})
		} else {
			rows = append(rows, []ScreenButton{{Text: fmt.Sprintf("%s — %s", it.Name, lang.T(l, "sold_out")), CallbackData: CbNoop}})
		}
	}
	rows = append(rows, []ScreenButton{{Text: lang.T(l, "back"), CallbackData: CbNav + string(ViewHome)}})
	return ScreenContent{Text: b.String(), Buttons: rows}
}

func BuildCartScreen(cart *Cart, l string) ScreenContent {
	if cart.IsEmpty() {
		return ScreenContent{
			Text:    lang.T(l, "cart_title") + "\n\n" + lang.T(l, "cart_empty"),
			Buttons: [][]ScreenButton{{{Text: lang.T(l, "to_menu"), CallbackData: CbNav + string(ViewMenu)}}},
		}
	}
	var b strings.Builder
	b.WriteString(lang.T(l, "cart_title") + "\n")
	var rows [][]ScreenButton
	for _, it := range cart.Items {
		fmt.Fprintf(&b, "\n• %s × %d — ₪%d", it.Name, it.Qty, it.Subtotal())
		rows = append(rows, []ScreenButton{
			{Text: "➖", CallbackData: CbDec + it.ID},
			{Text: fmt.Sprintf("%s ×%d", it.Name, it.Qty), CallbackData: CbNoop},
			{Text: "➕", CallbackData: CbInc + it.ID},
			{Text: "🗑", CallbackData: CbRemove + it.ID},
		})
	}
	b.WriteString("\n\n" + lang.T(l, "cart_total", cart.Total()))
	rows = append(rows,
		[]ScreenButton{{Text: lang.T(l, "to_checkout"), CallbackData: CbNav + string(ViewCheckout)}},
		[]ScreenButton{{Text: lang.T(l, "back"), CallbackData: CbNav + string(ViewMenu)}},
	)
	return ScreenContent{Text: b.String(), Buttons: rows}
}

func BuildCheckoutScreen(s *Session, l string) ScreenContent {
	d := s.Details()
	var b strings.Builder
	b.WriteString(lang.T(l, "checkout_title") + "\n\n")
	fmt.Fprintf(&b, "%s: %s\n", lang.T(l, "field_name"), d.CustomerName)
	fmt.Fprintf(&b, "%s: %s\n", lang.T(l, "field_phone"), d.Phone)
	if d.Method == models.MethodDelivery {
		fmt.Fprintf(&b, "%s: %s\n", lang.T(l, "field_address"), d.Address)
	}
	fmt.Fprintf(&b, "%s: %s\n", lang.T(l, "field_notes"), d.Notes)
	b.WriteString("\n" + lang.T(l, "cart_total", s.GrandTotal()))

	rows := [][]ScreenButton{
		{
			{Text: selected(lang.T(l, "pickup"), d.Method == models.MethodPickup), CallbackData: CbMethod + string(models.MethodPickup)},
			{Text: selected(lang.T(l, "delivery", DeliveryFee), d.Method == models.MethodDelivery), CallbackData: CbMethod + string(models.MethodDelivery)},
		},
		{
			{Text: lang.T(l, "field_name"), CallbackData: CbField + FieldName},
			{Text: lang.T(l, "field_phone"), CallbackData: CbField + FieldPhone},
		},
	}
	fieldRow := []ScreenButton{{Text: lang.T(l, "field_notes"), CallbackData: CbField + FieldNotes}}
	if d.Method == models.MethodDelivery {
		fieldRow = append([]ScreenButton{{Text: lang.T(l, "field_address"), CallbackData: CbField + FieldAddress}}, fieldRow...)
	}
	rows = append(rows, fieldRow)
	if s.CanSubmit() {
		rows = append(rows, []ScreenButton{{Text: lang.T(l, "send_whatsapp"), CallbackData: CbSend}})
	} else {
		b.WriteString("\n\n" + lang.T(l, "fill_required"))
	}
	rows = append(rows, []ScreenButton{{Text: lang.T(l, "back"), CallbackData: CbNav + string(ViewCart)}})
	return ScreenContent{Text: b.String(), Buttons: rows}
}

func BuildSuccessScreen(h OrderHandoff, l string) ScreenContent {
	text := lang.T(l, "success_title") + "\n\n" + lang.T(l, "success_text")
	var rows [][]ScreenButton
	if h.Link != "" {
		rows = append(rows, []ScreenButton{{Text: lang.T(l, "send_whatsapp"), URL: h.Link}})
	}
	rows = append(rows, []ScreenButton{{Text: lang.T(l, "back_home"), CallbackData: CbNav + string(ViewHome)}})
	return ScreenContent{Text: text, Buttons: rows}
}

func BuildAdminScreen(items []models.MenuItem, copied bool, opts RenderOptions) ScreenContent {
	l := opts.Lang
	var b strings.Builder
	b.WriteString(lang.T(l, "admin_title") + "\n")
	share := lang.T(l, "admin_share")
	if copied {
		share = "✅ " + lang.T(l, "admin_copied")
		if opts.ShareLink != "" {
			b.WriteString("\n" + opts.ShareLink + "\n")
		}
	}
	rows := [][]ScreenButton{{{Text: share, CallbackData: CbAdmShare}}}
	for _, it := range items {
		status := lang.T(l, "admin_available")
		if !it.IsAvailable {
			status = lang.T(l, "admin_unavailable")
		}
		fmt.Fprintf(&b, "\n%s — ₪%d (%s)", it.Name, it.Price, categoryLabel(l, it.Category))
		rows = append(rows, []ScreenButton{
			{Text: it.Name, CallbackData: CbNoop},
			{Text: lang.T(l, "admin_edit"), CallbackData: CbAdmEdit + it.ID},
			{Text: status, CallbackData: CbAdmToggle + it.ID},
		})
	}
	var addRow []ScreenButton
	for _, c := range models.BrowseCategories {
		addRow = append(addRow, ScreenButton{Text: lang.T(l, "admin_add") + " " + categoryLabel(l, c), CallbackData: CbAdmAdd + string(c)})
	}
	rows = append(rows, addRow[:2], addRow[2:])
	return ScreenContent{Text: b.String(), Buttons: rows}
}

func BuildEditScreen(item models.MenuItem, l string) ScreenContent {
	text := lang.T(l, "admin_edit_title", item.Name) + "\n\n" +
		fmt.Sprintf("%s: %s\n%s: ₪%d\n%s: %s",
			lang.T(l, "edit_name"), item.Name,
			lang.T(l, "edit_price"), item.Price,
			lang.T(l, "edit_description"), item.Description)
	return ScreenContent{
		Text: text,
		Buttons: [][]ScreenButton{
			{
				{Text: lang.T(l, "edit_name"), CallbackData: CbEditField + FieldItemName},
				{Text: lang.T(l, "edit_price"), CallbackData: CbEditField + FieldItemPrice},
				{Text: lang.T(l, "edit_description"), CallbackData: CbEditField + FieldItemDesc},
			},
			{
				{Text: lang.T(l, "edit_done"), CallbackData: CbEditSave},
				{Text: "✖️", CallbackData: CbEditCancel},
			},
		},
	}
}
