// Package form provides the list editor: one tab per category, one
// numbered row per entry.
package form

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driving"
)

// ErrExportUnavailable is reported when no export service is configured.
var ErrExportUnavailable = errors.New("export service not available")

// chromeHeight is the number of lines used by the title, tabs and status bar.
const chromeHeight = 6

// View is the list editor.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	form     driving.FormService
	export   driving.ExportService
	settings driving.SettingsService
	ctx      context.Context

	title      string
	categories []domain.Category
	rows       [][]*input.EntryInput

	tab    int
	row    int
	offset int

	exporting bool
	status    *status.Bar

	width  int
	height int
	ready  bool
}

// NewView creates a new list editor.
func NewView(
	s *styles.Styles,
	form driving.FormService,
	export driving.ExportService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	categories := domain.Categories()
	rows := make([][]*input.EntryInput, len(categories))
	for ci, c := range categories {
		rows[ci] = make([]*input.EntryInput, domain.ItemsPerCategory)
		for i := range rows[ci] {
			rows[ci][i] = input.NewEntryInput(s, c, i)
		}
	}

	v := &View{
		styles:     s,
		keymap:     km,
		form:       form,
		export:     export,
		settings:   settings,
		ctx:        context.Background(),
		title:      domain.DefaultTitle,
		categories: categories,
		rows:       rows,
		status:     status.NewBar(s, km),
		width:      80,
		height:     24,
	}
	v.focused().Focus()
	return v
}

// WithContext sets the context exports run under.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init syncs the rows with the form and loads settings.
func (v *View) Init() tea.Cmd {
	v.Sync()
	return tea.Batch(v.focused().Init(), v.loadSettings())
}

// Sync copies every entry from the form service into the rows.
func (v *View) Sync() {
	if v.form != nil {
		snap := v.form.Snapshot()
		for ci, c := range v.categories {
			for i, row := range v.rows[ci] {
				row.SetValue(snap.Entry(c.ID, i))
			}
		}
	}
	v.updateProgress()
}

func (v *View) loadSettings() tea.Cmd {
	if v.settings == nil {
		return nil
	}
	return func() tea.Msg {
		settings, err := v.settings.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the list editor.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err == nil && msg.Settings != nil && msg.Settings.List.Title != "" {
			v.title = msg.Settings.List.Title
		}
		return v, nil

	case messages.ExportRequested:
		return v, v.startExport(msg.Format)

	case messages.ExportCompleted:
		v.exporting = false
		if msg.Err != nil {
			v.status.SetState(status.StateError)
			v.status.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.status.SetState(status.StateExported)
		v.status.SetMessage(msg.Result.Path)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	_, cmd, _ = v.focused().Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(keyStr, v.keymap.ExportText):
		return v, v.startExport(domain.ExportFormatText)

	case keymap.Matches(keyStr, v.keymap.ExportPDF):
		return v, v.startExport(domain.ExportFormatPDF)

	case keymap.Matches(keyStr, v.keymap.NextCategory):
		return v, v.moveTo((v.tab+1)%len(v.categories), v.row)

	case keymap.Matches(keyStr, v.keymap.PrevCategory):
		return v, v.moveTo((v.tab+len(v.categories)-1)%len(v.categories), v.row)

	case keymap.Matches(keyStr, v.keymap.Up):
		if v.row > 0 {
			return v, v.moveTo(v.tab, v.row-1)
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.row < domain.ItemsPerCategory-1 {
			return v, v.moveTo(v.tab, v.row+1)
		}
		return v, nil
	}

	row := v.focused()
	_, cmd, changed := row.Update(msg)
	if !changed {
		return v, cmd
	}

	if v.form != nil {
		v.form.SetEntry(row.Category().ID, row.Index(), row.Value())
	}
	v.status.Clear()
	v.updateProgress()
	return v, cmd
}

// moveTo focuses the row at the given category tab and position.
func (v *View) moveTo(tab, row int) tea.Cmd {
	v.focused().Blur()
	v.tab = tab
	v.row = row
	v.scrollToRow()
	return v.focused().Focus()
}

// startExport snapshots the form now, while still on the UI loop, and
// renders and saves it in a command.
func (v *View) startExport(format domain.ExportFormat) tea.Cmd {
	if v.exporting {
		return nil
	}
	if v.export == nil || v.form == nil {
		v.status.SetState(status.StateError)
		v.status.SetMessage(ErrExportUnavailable.Error())
		return nil
	}

	snapshot := v.form.Snapshot()
	v.exporting = true
	v.status.SetState(status.StateExporting)

	ctx := v.ctx
	exportService := v.export
	settingsService := v.settings
	return func() tea.Msg {
		settings := domain.DefaultAppSettings()
		if settingsService != nil {
			if loaded, err := settingsService.Get(); err == nil && loaded != nil {
				settings = *loaded
			}
		}

		result, err := exportService.Export(ctx, snapshot, settings.ExportOptions(format))
		return messages.ExportCompleted{Result: result, Err: err}
	}
}

func (v *View) focused() *input.EntryInput {
	return v.rows[v.tab][v.row]
}

func (v *View) updateProgress() {
	filled := 0
	for ci := range v.rows {
		for _, row := range v.rows[ci] {
			if !domain.BlankWhitespace.IsBlank(row.Value()) {
				filled++
			}
		}
	}
	v.status.SetProgress(filled, len(v.categories)*domain.ItemsPerCategory)
}

// visibleRows returns how many entry rows fit on screen.
func (v *View) visibleRows() int {
	n := v.height - chromeHeight
	if n < 1 {
		n = 1
	}
	if n > domain.ItemsPerCategory {
		n = domain.ItemsPerCategory
	}
	return n
}

func (v *View) scrollToRow() {
	visible := v.visibleRows()
	if v.row < v.offset {
		v.offset = v.row
	}
	if v.row >= v.offset+visible {
		v.offset = v.row - visible + 1
	}
	if v.offset > domain.ItemsPerCategory-visible {
		v.offset = domain.ItemsPerCategory - visible
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// View renders the list editor.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	title := runewidth.Truncate(v.title, v.width, "…")
	b.WriteString(lipgloss.PlaceHorizontal(v.width, lipgloss.Center, v.styles.Title.Render(title)))
	b.WriteString("\n\n")

	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	visible := v.visibleRows()
	for i := v.offset; i < v.offset+visible && i < domain.ItemsPerCategory; i++ {
		b.WriteString(v.rows[v.tab][i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.status.View())

	return b.String()
}

func (v *View) renderTabs() string {
	tabs := make([]string, 0, len(v.categories))
	for ci, c := range v.categories {
		if ci == v.tab {
			tabs = append(tabs, v.styles.ActiveTab.Render(c.Name))
			continue
		}
		tabs = append(tabs, v.styles.Tab.Render(c.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.status.SetWidth(width)
	for ci := range v.rows {
		for _, row := range v.rows[ci] {
			row.SetWidth(width)
		}
	}
	v.scrollToRow()
}

// Category returns the category being edited.
func (v *View) Category() domain.Category {
	return v.categories[v.tab]
}

// Row returns the 0-based position of the focused row.
func (v *View) Row() int {
	return v.row
}

// Exporting reports whether an export is in flight.
func (v *View) Exporting() bool {
	return v.exporting
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.status
}
