package menu

// FilterCategory returns the items that belong to c, in source order.
func FilterCategory(items []Item, c Category) []Item {
	if c == CategoryAll {
		return items
	}

	result := make([]Item, 0, len(items))
	for _, it := range items {
		if it.InCategory(c) {
			result = append(result, it)
		}
	}

	return result
}

// Derive computes the visible list from the source list and the selection
// state: category filter, then allergy exclusion, then sort. It never
// modifies source.
func Derive(source []Item, c Category, rules []AllergyRule, allergies []string, opt SortOption) []Item {
	items := FilterCategory(source, c)
	items = ExcludeByAllergy(items, rules, allergies)

	return SortItems(items, opt)
}
