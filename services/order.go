package services

import (
	"fmt"
	"net/url"
	"strings"

	"home-catering/lang"
	"home-catering/models"
)

// DeliveryFee is the flat surcharge added to delivery orders.
const DeliveryFee int64 = 35

func GrandTotal(cart *Cart, method models.FulfillmentMethod) int64 {
	total := cart.Total()
	if method == models.MethodDelivery {
		total += DeliveryFee
	}
	return total
}

// CanSubmit reports whether the checkout form has what the send action needs:
// name and phone, plus an address for delivery.
func CanSubmit(d models.OrderDetails) bool {
	if d.CustomerName == "" || d.Phone == "" {
		return false
	}
	if d.Method == models.MethodDelivery && d.Address == "" {
		return false
	}
	return true
}

// FormatOrderMessage renders the order for the business chat. It does not
// validate details; empty fields are rendered empty.
func FormatOrderMessage(langCode string, d models.OrderDetails, cart *Cart, grandTotal int64) string {
	method := lang.T(langCode, "order_pickup")
	if d.Method == models.MethodDelivery {
		method = lang.T(langCode, "order_delivery", d.Address)
	}
	lines := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, fmt.Sprintf("• %s (%d %s) - ₪%d", it.Name, it.Qty, lang.T(langCode, "units"), it.Subtotal()))
	}
	notes := d.Notes
	if notes == "" {
		notes = lang.T(langCode, "order_no_notes")
	}

	var b strings.Builder
	b.WriteString(lang.T(langCode, "order_header") + "\n\n")
	b.WriteString(lang.T(langCode, "order_name", d.CustomerName) + "\n")
	b.WriteString(lang.T(langCode, "order_phone", d.Phone) + "\n")
	b.WriteString(lang.T(langCode, "order_method", method) + "\n\n")
	b.WriteString(lang.T(langCode, "order_items") + "\n" + strings.Join(lines, "\n") + "\n\n")
	b.WriteString(lang.T(langCode, "order_notes", notes) + "\n\n")
	b.WriteString(lang.T(langCode, "order_total", grandTotal) + "\n\n")
	b.WriteString(lang.T(langCode, "order_confirm"))
	return b.String()
}

// WhatsAppLink builds the wa.me deep link that opens a chat with phone,
// prefilled with message.
func WhatsAppLink(phone, message string) string {
	link := "https://wa.me/" + phone
	if message == "" {
		return link
	}
	// QueryEscape turns spaces into '+', which wa.me keeps literally.
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
