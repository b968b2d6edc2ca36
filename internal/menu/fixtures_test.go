package menu

// sampleMenu has 10 items, 6 of them pizza, exactly one pizza containing
// mozzarella. Prices are unique.
func sampleMenu() []Item {
	return []Item{
		{ID: "1", Name: "Margherita", Category: "pizza", Price: 10.5, Recipe: "Tomato sauce, fresh Mozzarella, basil"},
		{ID: "2", Name: "Marinara", Category: "pizza", Price: 8.0, Recipe: "Tomato, garlic, oregano, olive oil"},
		{ID: "3", Name: "Diavola", Category: "pizza", Price: 12.0, Recipe: "Tomato, spicy salami, chili"},
		{ID: "4", Name: "Funghi", Category: "pizza", Price: 11.0, Recipe: "Tomato, mushrooms, thyme"},
		{ID: "5", Name: "Ortolana", Category: "pizza", Price: 9.5, Recipe: "Tomato, grilled vegetables, olives"},
		{ID: "6", Name: "Bianca Vegana", Category: "pizza", Price: 13.0, Recipe: "Garlic, rosemary, olive oil"},
		{ID: "7", Name: "Caesar Salad", Category: "salad", Price: 7.0, Recipe: "Romaine, croutons, anchovies, parmesan"},
		{ID: "8", Name: "Tomato Soup", Category: "soup", Price: 6.0, Recipe: "Tomatoes, onion, vegetable stock"},
		{ID: "9", Name: "Chocolate Cake", Category: "dessert", Price: 5.5, Recipe: "Dark chocolate, eggs, butter, walnuts"},
		{ID: "10", Name: "Lemonade", Category: "drinks", Price: 3.0, Recipe: "Lemon, sugar, water"},
	}
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func sameIDs(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

// makeItems builds n items with sequential IDs and category "pizza".
func makeItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{
			ID:       string(rune('a'+i%26)) + string(rune('0'+i/26)),
			Name:     "item",
			Category: "pizza",
			Price:    float64(i),
		})
	}
	return items
}
