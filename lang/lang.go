package lang

import "fmt"

const (
	He = "he"
	En = "en"
)

// Valid reports whether code is a supported language.
func Valid(code string) bool {
	return code == He || code == En
}

// T returns the text for key in the given language, formatted with args.
// Unknown languages fall back to Hebrew; unknown keys are returned as-is.
func T(code, key string, args ...interface{}) string {
	table, ok := texts[code]
	if !ok {
		table = texts[He]
	}
	s, ok := table[key]
	if !ok {
		s, ok = texts[He][key]
		if !ok {
			s = key
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(s, args...)
	}
	return s
}

var texts = map[string]map[string]string{
	He: {
		"home_title":        "המטבח של אמא 🍲",
		"home_subtitle":     "אוכל ביתי חם, מוכן באהבה. מזמינים מראש ואוספים או מקבלים עד הבית.",
		"to_menu":           "לתפריט המלא",
		"contact":           "דברו איתנו בוואטסאפ",
		"menu_header":       "📋 התפריט ליום %s",
		"menu_empty":        "אין מנות בקטגוריה הזו היום.",
		"sold_out":          "אזל להיום",
		"add_to_cart":       "להוספה לסל",
		"cart_button":       "🛒 סל (%d)",
		"cart_title":        "🛒 הסל שלי",
		"cart_empty":        "הסל שלך ריק.",
		"cart_total":        "סה\"כ: ₪%d",
		"to_checkout":       "המשך לפרטי משלוח",
		"back":              "⬅️ חזרה",
		"checkout_title":    "פרטי הזמנה",
		"pickup":            "איסוף עצמי",
		"delivery":          "משלוח (+₪%d)",
		"field_name":        "👤 שם",
		"field_phone":       "📞 טלפון",
		"field_address":     "📍 כתובת",
		"field_notes":       "📝 הערות",
		"prompt_name":       "איך קוראים לך?",
		"prompt_phone":      "מה מספר הטלפון? (05X-XXXXXXX)",
		"prompt_address":    "לאן לשלוח? (רחוב, מספר בית, עיר)",
		"prompt_notes":      "יש משהו שאמא צריכה לדעת?",
		"send_whatsapp":     "שליחה בוואטסאפ לאמא",
		"confirm_sent":      "✅ שלחתי",
		"fill_required":     "כדי לשלוח צריך למלא שם וטלפון (וכתובת למשלוח).",
		"success_title":     "✅ ההזמנה נשלחה!",
		"success_text":      "אמא תחזור אליך בהקדם לאישור.",
		"back_home":         "חזרה לתפריט",
		"admin_on":          "⚙️ ניהול",
		"admin_off":         "✖️ יציאה מניהול",
		"admin_title":       "⚙️ עריכת תפריט וזמינות",
		"admin_share":       "שתפי את האפליקציה",
		"admin_copied":      "הקישור הועתק!",
		"admin_available":   "זמין",
		"admin_unavailable": "אזל",
		"admin_edit":        "✏️ עריכה",
		"admin_add":         "➕ מנה חדשה",
		"admin_edit_title":  "עריכת %s",
		"edit_name":         "שם",
		"edit_price":        "מחיר",
		"edit_description":  "תיאור",
		"edit_done":         "💾 שמירה",
		"prompt_new_name":   "מה השם החדש?",
		"prompt_new_price":  "מה המחיר החדש? (מספר שלם)",
		"prompt_new_desc":   "מה התיאור החדש?",
		"prompt_add_item":   "שם ומחיר למנה החדשה, בפורמט: שם;מחיר",
		"saved":             "נשמר ✅",
		"cat_main":          "מנות עיקריות",
		"cat_side":          "תוספות",
		"cat_salad":         "סלטים",
		"cat_dessert":       "קינוחים",
		"cat_special":       "מיוחדים",
		"day_Sunday":        "ראשון",
		"day_Monday":        "שני",
		"day_Tuesday":       "שלישי",
		"day_Wednesday":     "רביעי",
		"day_Thursday":      "חמישי",
		"day_Friday":        "שישי",
		"day_Saturday":      "שבת",
		"units":             "יח'",
		"order_header":      "*הזמנה חדשה מהאפליקציה!* 🍲",
		"order_name":        "👤 *שם:* %s",
		"order_phone":       "📞 *טלפון:* %s",
		"order_method":      "📍 *שיטה:* %s",
		"order_pickup":      "איסוף עצמי",
		"order_delivery":    "משלוח לכתובת: %s",
		"order_items":       "🍴 *פירוט מנות:*",
		"order_notes":       "📝 *הערות:* %s",
		"order_no_notes":    "אין",
		"order_total":       "💰 *סה\"כ לתשלום:* ₪%d",
		"order_confirm":     "מאשר/ת את ההזמנה?",
	},
	En: {
		"home_title":        "Mom's Kitchen 🍲",
		"home_subtitle":     "Warm home cooking made with love. Order ahead for pickup or delivery.",
		"to_menu":           "Full menu",
		"contact":           "Chat with us on WhatsApp",
		"menu_header":       "📋 Menu for %s",
		"menu_empty":        "Nothing in this category today.",
		"sold_out":          "sold out today",
		"add_to_cart":       "Add to cart",
		"cart_button":       "🛒 Cart (%d)",
		"cart_title":        "🛒 My cart",
		"cart_empty":        "Your cart is empty.",
		"cart_total":        "Total: ₪%d",
		"to_checkout":       "Continue to delivery details",
		"back":              "⬅️ Back",
		"checkout_title":    "Order details",
		"pickup":            "Pickup",
		"delivery":          "Delivery (+₪%d)",
		"field_name":        "👤 Name",
		"field_phone":       "📞 Phone",
		"field_address":     "📍 Address",
		"field_notes":       "📝 Notes",
		"prompt_name":       "What is your name?",
		"prompt_phone":      "What is your phone number?",
		"prompt_address":    "Where should we deliver? (street, number, city)",
		"prompt_notes":      "Anything the kitchen should know?",
		"send_whatsapp":     "Send on WhatsApp",
		"confirm_sent":      "✅ Sent",
		"fill_required":     "Name and phone are required (and an address for delivery).",
		"success_title":     "✅ Order sent!",
		"success_text":      "We will get back to you shortly to confirm.",
		"back_home":         "Back to menu",
		"admin_on":          "⚙️ Admin",
		"admin_off":         "✖️ Leave admin",
		"admin_title":       "⚙️ Edit menu and availability",
		"admin_share":       "Share the app",
		"admin_copied":      "Link copied!",
		"admin_available":   "available",
		"admin_unavailable": "sold out",
		"admin_edit":        "✏️ Edit",
		"admin_add":         "➕ New dish",
		"admin_edit_title":  "Editing %s",
		"edit_name":         "Name",
		"edit_price":        "Price",
		"edit_description":  "Description",
		"edit_done":         "💾 Save",
		"prompt_new_name":   "New name?",
		"prompt_new_price":  "New price? (whole number)",
		"prompt_new_desc":   "New description?",
		"prompt_add_item":   "Name and price of the new dish, as: name;price",
		"saved":             "Saved ✅",
		"cat_main":          "Main courses",
		"cat_side":          "Side dishes",
		"cat_salad":         "Salads",
		"cat_dessert":       "Desserts",
		"cat_special":       "Specials",
		"day_Sunday":        "Sunday",
		"day_Monday":        "Monday",
		"day_Tuesday":       "Tuesday",
		"day_Wednesday":     "Wednesday",
		"day_Thursday":      "Thursday",
		"day_Friday":        "Friday",
		"day_Saturday":      "Saturday",
		"units":             "pcs",
		"order_header":      "*New order from the app!* 🍲",
		"order_name":        "👤 *Name:* %s",
		"order_phone":       "📞 *Phone:* %s",
		"order_method":      "📍 *Method:* %s",
		"order_pickup":      "Pickup",
		"order_delivery":    "Delivery to: %s",
		"order_items":       "🍴 *Items:*",
		"order_notes":       "📝 *Notes:* %s",
		"order_no_notes":    "none",
		"order_total":       "💰 *Total to pay:* ₪%d",
		"order_confirm":     "Do you confirm the order?",
	},
}
