package domain

import "fmt"

// Entries holds the fixed-size entry slots of one category.
type Entries [ItemsPerCategory]string

// FormState maps every category to exactly ItemsPerCategory entries.
// The zero value is a valid, all-empty form. FormState is a value type:
// assigning it copies every entry, which is how snapshots are taken.
type FormState struct {
	entries [len(categories)]Entries
}

// NewFormState creates an all-empty form.
func NewFormState() *FormState {
	return &FormState{}
}

// SetEntry replaces the entry at the given category and position.
// An unknown category or a position outside [0, ItemsPerCategory) is a
// programming error and panics.
func (f *FormState) SetEntry(id CategoryID, index int, value string) {
	ci := mustIndex(id, index)
	f.entries[ci][index] = value
}

// Entry returns the entry at the given category and position.
// It panics under the same conditions as SetEntry.
func (f *FormState) Entry(id CategoryID, index int) string {
	ci := mustIndex(id, index)
	return f.entries[ci][index]
}

// Entries returns a copy of every entry in the category.
func (f *FormState) Entries(id CategoryID) Entries {
	ci := mustIndex(id, 0)
	return f.entries[ci]
}

// Snapshot returns an independent copy of the form.
func (f *FormState) Snapshot() FormState {
	return *f
}

// Clear resets every entry to empty.
func (f *FormState) Clear() {
	*f = FormState{}
}

// FilledCount returns the number of entries that are not blank under the policy.
func (f *FormState) FilledCount(policy BlankPolicy) int {
	n := 0
	for ci := range f.entries {
		for _, v := range f.entries[ci] {
			if !policy.IsBlank(v) {
				n++
			}
		}
	}
	return n
}

func mustIndex(id CategoryID, index int) int {
	ci := id.index()
	if ci < 0 {
		panic(fmt.Sprintf("domain: unknown category %q", id))
	}
	if index < 0 || index >= ItemsPerCategory {
		panic(fmt.Sprintf("domain: entry index %d out of range [0,%d)", index, ItemsPerCategory))
	}
	return ci
}
