package tui

import "errors"

// ErrMissingFormService is returned when the form service is not provided.
var ErrMissingFormService = errors.New("tui: form service is required")

// ErrMissingExportService is returned when the export service is not provided.
var ErrMissingExportService = errors.New("tui: export service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
