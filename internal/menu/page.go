package menu

// PageSize is the number of cards shown per page.
const PageSize = 8

// PageCount returns ceil(n/size), which is 0 for an empty list.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}

	return (n + size - 1) / size
}

// PageSlice returns the items on the 1-indexed page, i.e. the window
// [(page-1)*size, page*size) clipped to the list. Pages outside the list
// yield an empty slice.
func PageSlice(items []Item, page, size int) []Item {
	if page < 1 || size <= 0 {
		return nil
	}

	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// ClampPage bounds page to [1, total]. An empty list (total 0) clamps to 1.
func ClampPage(page, total int) int {
	if total < 1 || page < 1 {
		return 1
	}

	if page > total {
		return total
	}

	return page
}
