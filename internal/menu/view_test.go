package menu

import (
	"errors"
	"strings"
	"testing"
)

func newLoadedView(t *testing.T) *View {
	t.Helper()
	v := NewView(DefaultAllergyRules())
	v.Load(sampleMenu())
	return v
}

func TestNewView_Defaults(t *testing.T) {
	t.Parallel()

	v := NewView(DefaultAllergyRules())

	if v.State() != LoadPending {
		t.Errorf("State() = %v, want %v", v.State(), LoadPending)
	}
	if v.Category() != CategoryAll {
		t.Errorf("Category() = %q, want all", v.Category())
	}
	if v.Sort() != SortDefault {
		t.Errorf("Sort() = %q, want default", v.Sort())
	}
	if v.Page() != 1 {
		t.Errorf("Page() = %d, want 1", v.Page())
	}
	if v.PageCount() != 0 {
		t.Errorf("PageCount() = %d, want 0 before load", v.PageCount())
	}
	if len(v.PageItems()) != 0 {
		t.Errorf("PageItems() should be empty before load")
	}
}

func TestView_LoadStoresSource(t *testing.T) {
	t.Parallel()

	items := sampleMenu()
	v := NewView(DefaultAllergyRules())
	v.Load(items)

	if v.State() != LoadReady {
		t.Fatalf("State() = %v, want Ready", v.State())
	}
	if !sameIDs(v.Visible(), items) {
		t.Errorf("visible list should equal the source after load, got %v", ids(v.Visible()))
	}

	// Mutating the caller's slice must not leak into the view.
	items[0].Name = "changed"
	if v.Source()[0].Name == "changed" {
		t.Error("Load should keep its own copy of the source")
	}
}

func TestView_Fail(t *testing.T) {
	t.Parallel()

	v := NewView(DefaultAllergyRules())
	fetchErr := errors.New("connection refused")
	v.Fail(fetchErr)

	if v.State() != LoadFailed {
		t.Errorf("State() = %v, want Failed", v.State())
	}
	if !errors.Is(v.Err(), fetchErr) {
		t.Errorf("Err() = %v, want %v", v.Err(), fetchErr)
	}
	if len(v.Visible()) != 0 || len(v.Source()) != 0 {
		t.Error("lists should stay empty after a failed load")
	}

	// Operations stay total on an empty view.
	v.ApplyCategory(CategoryPizza)
	v.ToggleAllergy("Nuts")
	v.ApplySort(SortPriceAsc)
	v.SetPage(4)
	if v.Page() != 1 {
		t.Errorf("Page() = %d, want 1 on an empty view", v.Page())
	}
}

func TestView_PizzaDairyScenario(t *testing.T) {
	t.Parallel()

	v := newLoadedView(t)
	v.SetPage(2)

	v.ApplyCategory(CategoryPizza)
	if got := len(v.Visible()); got != 6 {
		t.Fatalf("pizza: got %d items, want 6", got)
	}
	if v.Page() != 1 {
		t.Errorf("pizza: page = %d, want 1", v.Page())
	}

	v.ToggleAllergy("Dairy Products")
	visible := v.Visible()
	if len(visible) != 5 {
		t.Fatalf("pizza + dairy: got %d items, want 5", len(visible))
	}
	for _, it := range visible {
		if strings.Contains(strings.ToLower(it.Recipe), "mozzarella") {
			t.Errorf("item %s with mozzarella should be excluded", it.ID)
		}
	}
	if v.Page() != 1 {
		t.Errorf("pizza + dairy: page = %d, want 1", v.Page())
	}
	if v.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want exactly 1", v.PageCount())
	}
}

func TestView_ToggleAllergyTwiceIsIdentity(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		for _, rule := range DefaultAllergyRules() {
			v := newLoadedView(t)
			v.ApplyCategory(c)
			v.ToggleAllergy("Seafood")

			beforeSet := strings.Join(v.Allergies(), ",")
			beforeList := v.Visible()

			v.ToggleAllergy(rule.Name)
			v.ToggleAllergy(rule.Name)

			if got := strings.Join(v.Allergies(), ","); got != beforeSet {
				t.Errorf("%s/%s: allergies = %q, want %q", c, rule.Name, got, beforeSet)
			}
			if !sameIDs(v.Visible(), beforeList) {
				t.Errorf("%s/%s: visible = %v, want %v", c, rule.Name, ids(v.Visible()), ids(beforeList))
			}
		}
	}
}

func TestView_ToggleAllergyDropsAppliedSort(t *testing.T) {
	t.Parallel()

	v := newLoadedView(t)
	v.ApplySort(SortPriceAsc)

	sorted := v.Visible()
	if sorted[0].ID != "10" {
		t.Fatalf("cheapest item should come first after price sort, got %s", sorted[0].ID)
	}

	v.ToggleAllergy("Nuts")

	want := ExcludeByAllergy(sampleMenu(), DefaultAllergyRules(), []string{"Nuts"})
	if !sameIDs(v.Visible(), want) {
		t.Errorf("after toggle visible = %v, want source-filtered order %v", ids(v.Visible()), ids(want))
	}
	if v.Sort() != SortPriceAsc {
		t.Errorf("selected sort option should be kept, got %q", v.Sort())
	}
}

func TestView_CategoryChangeDropsAppliedSort(t *testing.T) {
	t.Parallel()

	v := newLoadedView(t)
	v.ApplyCategory(CategoryPizza)
	v.ApplySort(SortNameAsc)
	v.ApplyCategory(CategoryPizza)

	if got := strings.Join(ids(v.Visible()), ","); got != "1,2,3,4,5,6" {
		t.Errorf("visible = %s, want source order 1,2,3,4,5,6", got)
	}
}

func TestView_ApplySortSortsCurrentList(t *testing.T) {
	t.Parallel()

	v := newLoadedView(t)
	v.ApplyCategory(CategoryPizza)
	v.ToggleAllergy("Dairy Products")
	v.SetPage(1)

	v.ApplySort(SortPriceDesc)

	if got := strings.Join(ids(v.Visible()), ","); got != "6,3,4,5,2" {
		t.Errorf("visible = %s, want 6,3,4,5,2", got)
	}
	if !sameIDs(v.Source(), sampleMenu()) {
		t.Error("sorting must not reorder the source list")
	}
	if v.Page() != 1 {
		t.Errorf("Page() = %d, want 1 after sort", v.Page())
	}
}

func TestView_InvariantsAcrossOperations(t *testing.T) {
	t.Parallel()

	source := append(sampleMenu(), makeItems(20)...)
	rules := DefaultAllergyRules()
	v := NewView(rules)
	v.Load(source)

	steps := []func(){
		func() { v.SetPage(3) },
		func() { v.ApplyCategory(CategoryPizza) },
		func() { v.SetPage(99) },
		func() { v.ToggleAllergy("Dairy Products") },
		func() { v.ApplySort(SortNameDesc) },
		func() { v.NextPage() },
		func() { v.NextPage() },
		func() { v.ApplyCategory(CategorySoup) },
		func() { v.PrevPage() },
		func() { v.ToggleAllergy("Dairy Products") },
		func() { v.ApplyCategory(CategoryAll) },
		func() { v.SetPage(-1) },
	}

	for i, step := range steps {
		step()

		visible := v.Visible()
		sourceIDs := make(map[string]bool)
		for _, it := range source {
			sourceIDs[it.ID] = true
		}

		for _, it := range visible {
			if !sourceIDs[it.ID] {
				t.Fatalf("step %d: item %s not in source", i, it.ID)
			}
			if !it.InCategory(v.Category()) {
				t.Errorf("step %d: item %s outside category %s", i, it.ID, v.Category())
			}
			for _, name := range v.Allergies() {
				rule, _ := FindRule(rules, name)
				if rule.Matches(it.Recipe) {
					t.Errorf("step %d: item %s matches active allergy %s", i, it.ID, name)
				}
			}
		}

		if v.Page() < 1 {
			t.Errorf("step %d: page %d < 1", i, v.Page())
		}
		if len(visible) > 0 && v.Page() > v.PageCount() {
			t.Errorf("step %d: page %d > page count %d", i, v.Page(), v.PageCount())
		}
	}
}

func TestView_SetPage(t *testing.T) {
	t.Parallel()

	v := NewView(nil)
	v.Load(makeItems(20))

	if v.PageCount() != 3 {
		t.Fatalf("PageCount() = %d, want 3", v.PageCount())
	}

	v.SetPage(3)
	if got := len(v.PageItems()); got != 4 {
		t.Errorf("last page holds %d items, want 4", got)
	}

	v.NextPage()
	if v.Page() != 3 {
		t.Errorf("NextPage past the end: page = %d, want 3", v.Page())
	}

	v.SetPage(1)
	v.PrevPage()
	if v.Page() != 1 {
		t.Errorf("PrevPage before the start: page = %d, want 1", v.Page())
	}
}

func TestDerive_MatchesViewPipeline(t *testing.T) {
	t.Parallel()

	rules := DefaultAllergyRules()
	got := Derive(sampleMenu(), CategoryPizza, rules, []string{"Dairy Products"}, SortPriceAsc)

	if strings.Join(ids(got), ",") != "2,5,4,3,6" {
		t.Errorf("Derive() = %v, want [2 5 4 3 6]", ids(got))
	}
}
