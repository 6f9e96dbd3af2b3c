package domain

// Item is a surviving entry, renumbered for export.
type Item struct {
	// Number is the 1-based position among the category's surviving entries.
	Number int

	// Text is the entry exactly as typed.
	Text string
}

// Section is one category block of an exported document.
type Section struct {
	Category Category
	Items    []Item
}

// Empty reports whether the section renders the placeholder.
func (s Section) Empty() bool {
	return len(s.Items) == 0
}

// Document is the format-independent content of an export.
type Document struct {
	Title       string
	Placeholder string
	Sections    []Section
}

// BuildDocument lays out a form snapshot for export. Every category appears
// exactly once, in declaration order. Blank entries are dropped and the
// rest are renumbered from 1 without changing their relative order.
func BuildDocument(state FormState, policy BlankPolicy, title, placeholder string) Document {
	doc := Document{
		Title:       title,
		Placeholder: placeholder,
		Sections:    make([]Section, 0, len(categories)),
	}

	for ci, c := range categories {
		section := Section{Category: c}
		for _, entry := range state.entries[ci] {
			if policy.IsBlank(entry) {
				continue
			}
			section.Items = append(section.Items, Item{
				Number: len(section.Items) + 1,
				Text:   entry,
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc
}
