package menu

import "slices"

// LoadState tracks the single menu fetch.
type LoadState int

// Load states.
const (
	// LoadPending means the fetch has not completed yet
	LoadPending LoadState = iota
	// LoadReady means the source list has been stored
	LoadReady
	// LoadFailed means the fetch failed and the lists stay empty
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadPending:
		return "Loading"
	case LoadReady:
		return "Ready"
	case LoadFailed:
		return "Failed"
	}

	return "Unknown"
}

// View is the menu page state: the source list fetched once, the derived
// visible list, and the user's selection (category, sort, allergies, page).
//
// Category and allergy changes re-derive the visible list from the source in
// source order. A sort is applied to the visible list as it stands and is not
// re-applied by later filter changes, even though the selected sort option
// keeps its value.
type View struct {
	err       error
	rules     []AllergyRule
	source    []Item
	visible   []Item
	allergies []string
	category  Category
	sort      SortOption
	page      int
	pageSize  int
	state     LoadState
}

// NewView creates an empty view using the given allergy rule table.
func NewView(rules []AllergyRule) *View {
	return &View{
		rules:    slices.Clone(rules),
		category: CategoryAll,
		sort:     SortDefault,
		page:     1,
		pageSize: PageSize,
		state:    LoadPending,
	}
}

// Load stores items as the source list and derives the visible list from
// the current category and allergy selection.
func (v *View) Load(items []Item) {
	v.source = slices.Clone(items)
	v.state = LoadReady
	v.err = nil
	v.rederive()
}

// Fail records a failed fetch. Both lists stay empty.
func (v *View) Fail(err error) {
	v.source = nil
	v.visible = nil
	v.state = LoadFailed
	v.err = err
	v.page = 1
}

// ApplyCategory selects a category, re-derives the visible list and returns
// to the first page.
func (v *View) ApplyCategory(c Category) {
	v.category = c
	v.rederive()
}

// ToggleAllergy adds name to the exclusion set when absent and removes it
// when present, then re-derives the visible list for the active category.
func (v *View) ToggleAllergy(name string) {
	if i := slices.Index(v.allergies, name); i >= 0 {
		v.allergies = slices.Delete(v.allergies, i, i+1)
	} else {
		v.allergies = append(v.allergies, name)
	}

	v.rederive()
}

// ApplySort orders the current visible list and returns to the first page.
// The source list is never reordered.
func (v *View) ApplySort(opt SortOption) {
	v.sort = opt
	v.visible = SortItems(v.visible, opt)
	v.page = 1
}

// SetPage jumps to a page, clamped to the available range.
func (v *View) SetPage(page int) {
	v.page = ClampPage(page, v.PageCount())
}

// NextPage moves forward one page if possible.
func (v *View) NextPage() {
	v.SetPage(v.page + 1)
}

// PrevPage moves back one page if possible.
func (v *View) PrevPage() {
	v.SetPage(v.page - 1)
}

func (v *View) rederive() {
	v.visible = Derive(v.source, v.category, v.rules, v.allergies, SortDefault)
	v.page = 1
}

// Category returns the active category.
func (v *View) Category() Category { return v.category }

// Sort returns the selected sort option.
func (v *View) Sort() SortOption { return v.sort }

// Allergies returns the active exclusions in the order they were enabled.
func (v *View) Allergies() []string { return slices.Clone(v.allergies) }

// HasAllergy reports whether the named exclusion is active.
func (v *View) HasAllergy(name string) bool { return slices.Contains(v.allergies, name) }

// Rules returns the allergy rule table.
func (v *View) Rules() []AllergyRule { return slices.Clone(v.rules) }

// Page returns the current 1-indexed page.
func (v *View) Page() int { return v.page }

// PageSize returns the number of items per page.
func (v *View) PageSize() int { return v.pageSize }

// PageCount returns the number of pages of the visible list.
func (v *View) PageCount() int { return PageCount(len(v.visible), v.pageSize) }

// PageItems returns the visible items on the current page.
func (v *View) PageItems() []Item { return PageSlice(v.visible, v.page, v.pageSize) }

// Visible returns a copy of the derived list.
func (v *View) Visible() []Item { return slices.Clone(v.visible) }

// Source returns a copy of the fetched list.
func (v *View) Source() []Item { return slices.Clone(v.source) }

// State returns the load state.
func (v *View) State() LoadState { return v.state }

// Err returns the fetch error recorded by Fail.
func (v *View) Err() error { return v.err }
