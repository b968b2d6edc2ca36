package menu

import (
	"fmt"
	"strings"
)

// Category is a menu category token. CategoryAll is the sentinel that
// disables category filtering.
type Category string

// Menu categories.
const (
	CategoryAll     Category = "all"
	CategorySalad   Category = "salad"
	CategoryPizza   Category = "pizza"
	CategorySoup    Category = "soup"
	CategoryDessert Category = "dessert"
	CategoryDrinks  Category = "drinks"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{
	CategoryAll,
	CategorySalad,
	CategoryPizza,
	CategorySoup,
	CategoryDessert,
	CategoryDrinks,
}

// Label returns the button caption for the category.
func (c Category) Label() string {
	switch c {
	case CategoryAll:
		return "All"
	case CategorySalad:
		return "Salad"
	case CategoryPizza:
		return "Pizza"
	case CategorySoup:
		return "Soups"
	case CategoryDessert:
		return "Desserts"
	case CategoryDrinks:
		return "Drinks"
	}

	return string(c)
}

// ParseCategory resolves a user supplied token (case-insensitive) to one of
// the selectable categories.
func ParseCategory(s string) (Category, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return CategoryAll, nil
	}

	for _, c := range Categories {
		if token == string(c) || token == strings.ToLower(c.Label()) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
