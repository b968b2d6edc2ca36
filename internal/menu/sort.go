package menu

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption selects the ordering of the visible list.
type SortOption string

// Sort options. SortDefault keeps whatever order the last filter pass left.
const (
	SortDefault   SortOption = "default"
	SortNameAsc   SortOption = "name-ascending"
	SortNameDesc  SortOption = "name-descending"
	SortPriceAsc  SortOption = "price-ascending"
	SortPriceDesc SortOption = "price-descending"
)

// SortOptions lists the options in the order the sort control shows them.
var SortOptions = []SortOption{
	SortDefault,
	SortNameAsc,
	SortNameDesc,
	SortPriceAsc,
	SortPriceDesc,
}

// sortAliases maps short tokens to sort options.
var sortAliases = map[string]SortOption{
	"a-z":         SortNameAsc,
	"z-a":         SortNameDesc,
	"low-to-high": SortPriceAsc,
	"high-to-low": SortPriceDesc,
}

// Label returns the caption shown in the sort control.
func (o SortOption) Label() string {
	switch o {
	case SortDefault:
		return "Default"
	case SortNameAsc:
		return "A-Z"
	case SortNameDesc:
		return "Z-A"
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	}

	return string(o)
}

// ParseSortOption resolves a sort token. Both the long names and the short
// web tokens (A-Z, Z-A, low-to-high, high-to-low) are accepted.
func ParseSortOption(s string) (SortOption, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return SortDefault, nil
	}

	for _, o := range SortOptions {
		if token == string(o) {
			return o, nil
		}
	}

	if o, ok := sortAliases[token]; ok {
		return o, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
}

// SortItems returns a sorted copy of items. The sort is stable, so items
// that compare equal keep their relative order. SortDefault (and any
// unknown option) returns an unchanged copy.
func SortItems(items []Item, opt SortOption) []Item {
	sorted := slices.Clone(items)

	switch opt {
	case SortNameAsc, SortNameDesc:
		coll := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b Item) int {
			if opt == SortNameDesc {
				return coll.CompareString(b.Name, a.Name)
			}
			return coll.CompareString(a.Name, b.Name)
		})
	case SortPriceAsc:
		slices.SortStableFunc(sorted, func(a, b Item) int {
			return comparePrice(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(sorted, func(a, b Item) int {
			return comparePrice(b.Price, a.Price)
		})
	case SortDefault:
	}

	return sorted
}

func comparePrice(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
