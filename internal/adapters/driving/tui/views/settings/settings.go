// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driving"
)

// ErrServiceUnavailable is reported when no settings service is configured.
var ErrServiceUnavailable = errors.New("settings service not available")

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionChoose
	SectionEdit
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
	keyEsc   = "esc"
)

// field is one configurable setting.
type field struct {
	key     string
	label   string
	options []string
	value   func(*domain.AppSettings) string
}

var fields = []field{
	{
		key: "list.name", label: "List name",
		value: func(s *domain.AppSettings) string { return s.List.Name },
	},
	{
		key: "list.title", label: "Title",
		value: func(s *domain.AppSettings) string { return s.List.Title },
	},
	{
		key: "export.format", label: "Default format",
		options: stringsOf(domain.AllExportFormats()),
		value:   func(s *domain.AppSettings) string { return s.Export.Format.String() },
	},
	{
		key: "export.encoding", label: "Text encoding",
		options: stringsOf(domain.AllTextEncodings()),
		value:   func(s *domain.AppSettings) string { return s.Export.Encoding.String() },
	},
	{
		key: "export.line_ending", label: "Line ending",
		options: []string{domain.LineEndingLF.String(), domain.LineEndingCRLF.String()},
		value:   func(s *domain.AppSettings) string { return s.Export.LineEnding.String() },
	},
	{
		key: "export.blank", label: "Blank entries",
		options: stringsOf(domain.AllBlankPolicies()),
		value:   func(s *domain.AppSettings) string { return s.Export.Blank.String() },
	},
	{
		key: "export.placeholder", label: "Empty category text",
		value: func(s *domain.AppSettings) string { return s.Export.Placeholder },
	},
	{
		key: "export.dir", label: "Output directory",
		value: func(s *domain.AppSettings) string { return s.Export.OutputDir },
	},
	{
		key: "pdf.font_path", label: "PDF font",
		value: func(s *domain.AppSettings) string { return s.PDF.FontPath },
	},
}

func stringsOf[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	// Current settings
	settings *domain.AppSettings
	err      error
	notice   string

	// Navigation state
	section  Section
	selected int // field in the overview
	option   int // option in the chooser

	input textinput.Model

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.CharLimit = 512

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		input:           input,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: ErrServiceUnavailable}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.notice = fmt.Sprintf("Saved %s", msg.Key)
		return v, v.loadSettings()

	case messages.SettingsReloaded:
		if msg.Err != nil {
			v.err = fmt.Errorf("reloading configuration: %w", msg.Err)
			return v, nil
		}
		v.notice = "Configuration file changed, reloaded"
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	if v.section == SectionEdit {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleKeyMsg handles key presses based on current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEsc {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.section = SectionOverview
		v.input.Blur()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionChoose:
		return v.handleChooseKeys(msg)
	case SectionEdit:
		return v.handleEditKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(fields)-1 {
			v.selected++
		}
	case keyEnter:
		f := fields[v.selected]
		current := v.currentValue(f)
		v.notice = ""

		if len(f.options) > 0 {
			v.section = SectionChoose
			v.option = indexOf(f.options, current)
			return v, nil
		}

		v.section = SectionEdit
		v.input.SetValue(current)
		v.input.CursorEnd()
		return v, v.input.Focus()
	}
	return v, nil
}

func (v *View) handleChooseKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	options := fields[v.selected].options

	switch msg.String() {
	case "up", "k":
		if v.option > 0 {
			v.option--
		}
	case keyDown, "j":
		if v.option < len(options)-1 {
			v.option++
		}
	case keyEnter:
		v.section = SectionOverview
		return v, v.save(fields[v.selected].key, options[v.option])
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		v.section = SectionOverview
		v.input.Blur()
		return v, v.save(fields[v.selected].key, strings.TrimSpace(v.input.Value()))
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// save returns a command that stores one setting.
func (v *View) save(key, value string) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Key: key, Err: ErrServiceUnavailable}
		}
		return messages.SettingsSaved{Key: key, Err: v.settingsService.Set(key, value)}
	}
}

func (v *View) currentValue(f field) string {
	if v.settings == nil {
		return ""
	}
	return f.value(v.settings)
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionChoose:
		b.WriteString(v.renderChoose())
	case SectionEdit:
		b.WriteString(v.renderEdit())
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	} else if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	labelWidth := 0
	for _, f := range fields {
		if len(f.label) > labelWidth {
			labelWidth = len(f.label)
		}
	}

	for i, f := range fields {
		value := v.currentValue(f)
		if value == "" {
			value = v.styles.Muted.Render("(default)")
		}

		line := fmt.Sprintf("%-*s  %s", labelWidth, f.label, value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderChoose() string {
	var b strings.Builder
	f := fields[v.selected]
	current := v.currentValue(f)

	b.WriteString(v.styles.Subtitle.Render(f.label))
	b.WriteString("\n\n")

	for i, o := range f.options {
		indicator := "  "
		if i == v.option {
			indicator = "> "
		}
		marker := ""
		if o == current {
			marker = v.styles.Success.Render(" (current)")
		}

		line := indicator + o + marker
		if i == v.option {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderEdit() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(fields[v.selected].label))
	b.WriteString("\n\n")
	b.WriteString(v.styles.InputField.Render(v.input.View()))
	b.WriteString("\n")

	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	case SectionChoose:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] cancel")
	case SectionEdit:
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.Width = width - 8
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.option = 0
	v.err = nil
	v.notice = ""
	v.input.SetValue("")
	v.input.Blur()
}
