// Package history lists the exports made during the session.
package history

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driving"
)

// View shows the session's exports, newest first.
type View struct {
	styles   *styles.Styles
	export   driving.ExportService
	results  []domain.ExportResult
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, export driving.ExportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		export: export,
		width:  80,
		height: 24,
	}
}

// Init loads the history.
func (v *View) Init() tea.Cmd {
	if v.export == nil {
		return nil
	}
	return func() tea.Msg {
		return messages.HistoryLoaded{Results: v.export.History()}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		v.results = make([]domain.ExportResult, len(msg.Results))
		for i, r := range msg.Results {
			v.results[len(msg.Results)-1-i] = r
		}
		v.selected = 0
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.results)-1 {
				v.selected++
			}
		}
	}

	return v, nil
}

// View renders the history.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Export history"))
	b.WriteString("\n\n")

	if len(v.results) == 0 {
		b.WriteString(v.styles.Muted.Render("Nothing exported yet. Press ctrl+s or ctrl+p while editing the list."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	for i, r := range v.results {
		line := fmt.Sprintf("%s  %-3s  %8s  %s",
			r.CreatedAt.Local().Format("15:04:05"), r.Format, humanSize(r.Size), r.Path)
		line = runewidth.Truncate(line, v.width-2, "…")

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Results returns the listed exports, newest first.
func (v *View) Results() []domain.ExportResult {
	return v.results
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
