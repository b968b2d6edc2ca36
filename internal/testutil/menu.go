// Package testutil provides shared test fixtures.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/AntoineGS/tidymenu/internal/menu"
)

// SampleMenu returns ten items: six pizzas (one with mozzarella), one item
// each of salad, soup, dessert and drinks. Prices are unique.
func SampleMenu() []menu.Item {
	return []menu.Item{
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

// MenuServer is an httptest server answering the menu endpoint.
type MenuServer struct {
	*httptest.Server
	hits atomic.Int32
}

// Hits returns how many requests reached the server.
func (s *MenuServer) Hits() int {
	return int(s.hits.Load())
}

// NewMenuServer serves items as JSON on /menu. The server is closed when the
// test ends.
func NewMenuServer(t *testing.T, items []menu.Item) *MenuServer {
	t.Helper()

	body, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("marshaling menu: %v", err)
	}

	return NewRawMenuServer(t, http.StatusOK, string(body))
}

// NewRawMenuServer answers /menu with the given status and body. Any other
// path returns 404.
func NewRawMenuServer(t *testing.T, status int, body string) *MenuServer {
	t.Helper()

	s := &MenuServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)

		if r.URL.Path != "/menu" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test server
	}))
	t.Cleanup(s.Close)

	return s
}
