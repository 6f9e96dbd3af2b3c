// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/bucketlist/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewForm is the list editor.
	ViewForm
	// ViewHistory lists the exports made this session.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewSettings is the settings configuration view.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewForm:
		return "form"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// EntryChanged is sent when the user edits an entry.
type EntryChanged struct {
	Category domain.CategoryID
	Index    int
	Value    string
}

// ExportRequested asks for the current form to be exported.
type ExportRequested struct {
	Format domain.ExportFormat
}

// ExportCompleted carries the outcome of an export.
type ExportCompleted struct {
	Result *domain.ExportResult
	Err    error
}

// HistoryLoaded carries the exports made this session.
type HistoryLoaded struct {
	Results []domain.ExportResult
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Key string
	Err error
}

// SettingsReloaded signals the configuration file changed on disk.
// Err is set when the new file could not be read.
type SettingsReloaded struct {
	Err error
}
