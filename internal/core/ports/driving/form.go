package driving

import "github.com/custodia-labs/bucketlist/internal/core/domain"

// FormService holds the entries being edited.
type FormService interface {
	// SetEntry replaces one entry. An unknown category or an index outside
	// [0, domain.ItemsPerCategory) is a programming error and panics.
	SetEntry(id domain.CategoryID, index int, value string)

	// Entry returns one entry.
	Entry(id domain.CategoryID, index int) string

	// Snapshot returns an independent copy of every entry.
	Snapshot() domain.FormState

	// Load replaces every entry with the snapshot's.
	Load(state domain.FormState)

	// Clear empties every entry.
	Clear()

	// Import replaces every entry with the content of a text export.
	// On error the form is left unchanged.
	Import(data []byte, enc domain.TextEncoding, placeholder string) error
}
