package menu

import (
	"strings"
	"testing"
)

func TestAllergyRuleMatches(t *testing.T) {
	t.Parallel()

	dairy, ok := FindRule(DefaultAllergyRules(), "Dairy Products")
	if !ok {
		t.Fatal("default rules should include Dairy Products")
	}

	tests := []struct {
		recipe string
		want   bool
	}{
		{recipe: "fresh mozzarella", want: true},
		{recipe: "FRESH MOZZARELLA", want: true},
		{recipe: "Melted gruyère cheese", want: true},
		{recipe: "mascarpone and coffee", want: true},
		{recipe: "tomato and basil", want: false},
		{recipe: "", want: false},
	}

	for _, tt := range tests {
		if got := dairy.Matches(tt.recipe); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.recipe, got, tt.want)
		}
	}
}

func TestExcludeByAllergy(t *testing.T) {
	t.Parallel()

	rules := DefaultAllergyRules()
	source := sampleMenu()

	tests := []struct {
		name    string
		active  []string
		wantIDs []string
	}{
		{
			name:    "no exclusions returns input",
			active:  nil,
			wantIDs: ids(source),
		},
		{
			name:    "dairy",
			active:  []string{"Dairy Products"},
			wantIDs: []string{"2", "3", "4", "5", "6", "8", "10"},
		},
		{
			name:    "nuts",
			active:  []string{"Nuts"},
			wantIDs: []string{"1", "2", "3", "4", "5", "6", "7", "8", "10"},
		},
		{
			name:    "seafood and nuts",
			active:  []string{"Seafood", "Nuts"},
			wantIDs: []string{"1", "2", "3", "4", "5", "6", "8", "10"},
		},
		{
			name:    "unknown rule excludes nothing",
			active:  []string{"Gluten"},
			wantIDs: ids(source),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExcludeByAllergy(source, rules, tt.active)
			if strings.Join(ids(got), ",") != strings.Join(tt.wantIDs, ",") {
				t.Errorf("ExcludeByAllergy() = %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestExcludeByAllergy_OrderPreservingSublist(t *testing.T) {
	t.Parallel()

	rules := DefaultAllergyRules()
	source := sampleMenu()

	exclusionSets := [][]string{
		{"Nuts"},
		{"Dairy Products"},
		{"Seafood"},
		{"Nuts", "Dairy Products"},
		{"Nuts", "Dairy Products", "Seafood"},
	}

	for _, active := range exclusionSets {
		got := ExcludeByAllergy(source, rules, active)

		// Sublist preserving relative order
		j := 0
		for _, it := range got {
			for j < len(source) && source[j].ID != it.ID {
				j++
			}
			if j == len(source) {
				t.Fatalf("%v: item %s missing from source or out of order", active, it.ID)
			}
			j++
		}

		// No excluded ingredient remains
		for _, it := range got {
			for _, name := range active {
				rule, _ := FindRule(rules, name)
				if rule.Matches(it.Recipe) {
					t.Errorf("%v: item %s still contains an ingredient of %s", active, it.ID, name)
				}
			}
		}
	}
}

func TestExcludeByAllergy_SyntheticRules(t *testing.T) {
	t.Parallel()

	rules := []AllergyRule{{Name: "Citrus", Ingredients: []string{"Lemon", "lime"}}}
	items := []Item{
		{ID: "a", Recipe: "lemon zest"},
		{ID: "b", Recipe: "LIME juice"},
		{ID: "c", Recipe: "orange"},
		{ID: "d"},
	}

	got := ExcludeByAllergy(items, rules, []string{"Citrus"})
	if strings.Join(ids(got), ",") != "c,d" {
		t.Errorf("got %v, want [c d]", ids(got))
	}
}

func TestExcludeByAllergy_BlankIngredientMatchesNothing(t *testing.T) {
	t.Parallel()

	rules := []AllergyRule{{Name: "Nuts", Ingredients: []string{"walnuts", "", "  "}}}
	items := []Item{
		{ID: "a", Recipe: "walnuts and honey"},
		{ID: "b", Recipe: "tomato"},
		{ID: "c"},
	}

	got := ExcludeByAllergy(items, rules, []string{"Nuts"})
	if strings.Join(ids(got), ",") != "b,c" {
		t.Errorf("got %v, want [b c]", ids(got))
	}
	if rules[0].Matches("tomato") {
		t.Error("a blank ingredient should not match every recipe")
	}
}
