// Package tui provides the interactive list editor.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/bucketlist/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Form holds the entries being edited.
	Form driving.FormService

	// Export renders and saves snapshots.
	Export driving.ExportService

	// Settings manages application settings. Optional; defaults apply
	// when nil.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	form driving.FormService,
	export driving.ExportService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Form:     form,
		Export:   export,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Form == nil {
		return ErrMissingFormService
	}
	if p.Export == nil {
		return ErrMissingExportService
	}
	return nil
}
