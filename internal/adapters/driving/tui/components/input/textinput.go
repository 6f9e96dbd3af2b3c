// Package input provides text input components for the TUI.
package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bucketlist/internal/core/domain"
)

const minInputWidth = 10

// EntryInput is one numbered row of the list editor.
type EntryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	category  domain.Category
	index     int
	width     int
}

// NewEntryInput creates the input for position index of a category.
func NewEntryInput(s *styles.Styles, category domain.Category, index int) *EntryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder(category, index)
	ti.CharLimit = 0
	ti.Prompt = ""

	e := &EntryInput{
		textinput: ti,
		styles:    s,
		category:  category,
		index:     index,
	}
	e.SetWidth(60)
	return e
}

// Placeholder returns the hint shown in an empty row, e.g.
// "仕事に関するやりたいこと 1".
func Placeholder(category domain.Category, index int) string {
	return fmt.Sprintf("%sに関するやりたいこと %d", category.Name, index+1)
}

// Init initialises the entry input.
func (e *EntryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages. changed reports whether the value was edited.
func (e *EntryInput) Update(msg tea.Msg) (input *EntryInput, cmd tea.Cmd, changed bool) {
	before := e.textinput.Value()
	e.textinput, cmd = e.textinput.Update(msg)
	return e, cmd, e.textinput.Value() != before
}

// View renders the numbered row. Unfocused rows are truncated to the row
// width by display cells, so wide characters never overflow.
func (e *EntryInput) View() string {
	number := e.styles.LineNumber.Render(fmt.Sprintf("%d.", e.index+1))

	var field string
	switch {
	case e.textinput.Focused():
		field = e.textinput.View()
	case e.textinput.Value() == "":
		field = e.styles.Muted.Render(runewidth.Truncate(e.textinput.Placeholder, e.textinput.Width, "…"))
	default:
		field = e.styles.Normal.Render(runewidth.Truncate(e.textinput.Value(), e.textinput.Width, "…"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, number, " ", field)
}

// Value returns the current input value.
func (e *EntryInput) Value() string {
	return e.textinput.Value()
}

// SetValue sets the input value.
func (e *EntryInput) SetValue(value string) {
	e.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (e *EntryInput) Focus() tea.Cmd {
	return e.textinput.Focus()
}

// Blur removes focus from the input.
func (e *EntryInput) Blur() {
	e.textinput.Blur()
}

// Focused returns whether the input is focused.
func (e *EntryInput) Focused() bool {
	return e.textinput.Focused()
}

// Category returns the category the row belongs to.
func (e *EntryInput) Category() domain.Category {
	return e.category
}

// Index returns the 0-based position of the row.
func (e *EntryInput) Index() int {
	return e.index
}

// SetWidth sets the width of the row.
func (e *EntryInput) SetWidth(width int) {
	e.width = width
	// Account for the line number and its gap
	inputWidth := width - 6
	if inputWidth < minInputWidth {
		inputWidth = minInputWidth
	}
	e.textinput.Width = inputWidth
}

// Width returns the current width.
func (e *EntryInput) Width() int {
	return e.width
}

// Reset clears the input.
func (e *EntryInput) Reset() {
	e.textinput.Reset()
}
