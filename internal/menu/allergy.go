package menu

import "strings"

// AllergyRule maps an allergy name to the ingredient substrings that mark a
// recipe as unsafe for it.
type AllergyRule struct {
	Name        string   `yaml:"name"`
	Ingredients []string `yaml:"ingredients"`
}

// DefaultAllergyRules returns the built-in rule table. A fresh slice is
// returned on every call so callers may modify it.
func DefaultAllergyRules() []AllergyRule {
	return []AllergyRule{
		{
			Name:        "Nuts",
			Ingredients: []string{"walnuts", "pine nuts", "almonds", "Peanut butter", "orgeat syrup", "peanuts"},
		},
		{
			Name: "Dairy Products",
			Ingredients: []string{
				"feta", "mozzarella", "parmesan", "fontina", "cream", "Gruyère cheese",
				"Cream cheese", "Mascarpone", "coconut milk", "milk", "butter",
			},
		},
		{
			Name:        "Seafood",
			Ingredients: []string{"anchovies", "tuna", "salmon", "shrimp", "calamari", "prawns", "fish stock", "fish"},
		},
	}
}

// Matches reports whether recipe contains any of the rule's ingredients,
// ignoring case. Blank ingredients never match.
func (r AllergyRule) Matches(recipe string) bool {
	text := strings.ToLower(recipe)
	for _, ingredient := range r.Ingredients {
		if strings.TrimSpace(ingredient) == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(ingredient)) {
			return true
		}
	}

	return false
}

// FindRule returns the rule with the given name.
func FindRule(rules []AllergyRule, name string) (AllergyRule, bool) {
	for _, r := range rules {
		if r.Name == name {
			return r, true
		}
	}

	return AllergyRule{}, false
}

// ExcludeByAllergy drops every item whose recipe mentions an ingredient of
// one of the active rules. With no active rules the input is returned as is.
// Relative order is preserved. Active names with no matching rule exclude
// nothing.
func ExcludeByAllergy(items []Item, rules []AllergyRule, active []string) []Item {
	if len(active) == 0 {
		return items
	}

	var ingredients []string
	for _, name := range active {
		rule, ok := FindRule(rules, name)
		if !ok {
			continue
		}
		for _, ingredient := range rule.Ingredients {
			if strings.TrimSpace(ingredient) == "" {
				continue
			}
			ingredients = append(ingredients, strings.ToLower(ingredient))
		}
	}

	result := make([]Item, 0, len(items))
	for _, it := range items {
		if !containsAny(strings.ToLower(it.Recipe), ingredients) {
			result = append(result, it)
		}
	}

	return result
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}

	return false
}
