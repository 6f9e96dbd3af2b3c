package domain

// CategoryID identifies one of the fixed life categories.
type CategoryID string

// The fixed category identifiers, in declaration order.
const (
	CategoryWork      CategoryID = "work"
	CategoryFamily    CategoryID = "family"
	CategoryEducation CategoryID = "education"
	CategoryWealth    CategoryID = "wealth"
	CategoryHealth    CategoryID = "health"
	CategoryHobby     CategoryID = "hobby"
)

// ItemsPerCategory is the number of entry slots in every category.
const ItemsPerCategory = 20

// Category is an immutable category record.
type Category struct {
	// ID is the stable identifier used in state and configuration.
	ID CategoryID

	// Name is the display name used in the UI and exported documents.
	Name string
}

var categories = [...]Category{
	{ID: CategoryWork, Name: "仕事"},
	{ID: CategoryFamily, Name: "家庭"},
	{ID: CategoryEducation, Name: "教養"},
	{ID: CategoryWealth, Name: "財産"},
	{ID: CategoryHealth, Name: "健康"},
	{ID: CategoryHobby, Name: "趣味"},
}

// Categories returns the fixed categories in declaration order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// CategoryCount returns the number of fixed categories.
func CategoryCount() int {
	return len(categories)
}

// LookupCategory returns the category with the given identifier.
func LookupCategory(id CategoryID) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// LookupCategoryByName resolves a display name or identifier to a category.
func LookupCategoryByName(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name || string(c.ID) == name {
			return c, true
		}
	}
	return Category{}, false
}

// IsValid returns true if the identifier names one of the fixed categories.
func (id CategoryID) IsValid() bool {
	_, ok := LookupCategory(id)
	return ok
}

// String returns the string representation.
func (id CategoryID) String() string {
	return string(id)
}

// index returns the declaration position of the category, or -1.
func (id CategoryID) index() int {
	for i, c := range categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
