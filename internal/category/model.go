package category

// Category is read-only reference data seeded at first start.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

const (
	Espresso  = "espresso"
	Filter    = "filter"
	Automatic = "automatic"
	Capsule   = "capsule"
)

// Defaults returns the four fixed catalog categories.
func Defaults() []Category {
	return []Category{
		{ID: Espresso, Name: "Espresso", Description: "Voor de echte koffiekenner"},
		{ID: Filter, Name: "Filter Koffie", Description: "Klassiek en betrouwbaar"},
		{ID: Automatic, Name: "Volautomaat", Description: "Gemak op knopdruk"},
		{ID: Capsule, Name: "Capsule Systemen", Description: "Snel en eenvoudig"},
	}
}

// Valid reports whether id is one of the fixed categories.
func Valid(id string) bool {
	switch id {
	case Espresso, Filter, Automatic, Capsule:
		return true
	}
	return false
}
