package models

type Category string

const (
	CategoryMainCourse Category = "main"
	CategorySideDish   Category = "side"
	CategorySalad      Category = "salad"
	CategoryDessert    Category = "dessert"
	CategorySpecial    Category = "special"
)

// BrowseCategories are the categories that get a tab on the menu screen.
var BrowseCategories = []Category{CategoryMainCourse, CategorySideDish, CategorySalad, CategoryDessert}

func ParseCategory(s string) (Category, bool) {
	switch c := Category(s); c {
	case CategoryMainCourse, CategorySideDish, CategorySalad, CategoryDessert, CategorySpecial:
		return c, true
	}
	return "", false
}

type Day string

const (
	Sunday    Day = "Sunday"
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"

	// Saturday is not a kitchen day. Selecting it shows only dishes served
	// the whole week.
	Saturday Day = "Saturday"
)

// Days is the working week of the kitchen.
var Days = []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

func ParseDay(s string) (Day, bool) {
	for _, d := range Days {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// MenuItem field names in JSON match the persisted catalog blob.
type MenuItem struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Price         int64    `json:"price" yaml:"price"`
	Category      Category `json:"category" yaml:"category"`
	Image         string   `json:"image" yaml:"image"`
	IsAvailable   bool     `json:"isAvailable" yaml:"is_available"`
	AvailableDays []Day    `json:"availableDays" yaml:"available_days"`
}

// OffersOn reports whether the item is on the menu for day. A full-week
// item is on every day's menu; an empty day list is on none.
func (m MenuItem) OffersOn(day Day) bool {
	if len(m.AvailableDays) == len(Days) {
		return true
	}
	for _, d := range m.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}
