// Package menu holds the menu data model and the browsing logic behind the
// menu page: category and allergy filtering, sorting and pagination over a
// list fetched once from the menu API.
package menu

// Item is a single dish as served by the menu API.
type Item struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image,omitempty"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// InCategory reports whether the item belongs to c. Every item belongs to
// CategoryAll; otherwise the match is exact and case-sensitive.
func (it Item) InCategory(c Category) bool {
	if c == CategoryAll {
		return true
	}

	return it.Category == string(c)
}
