package services

import (
	"fmt"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driven"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyListName     = "list.name"
	KeyListTitle    = "list.title"
	KeyExportFormat = "export.format"
	KeyExportEncode = "export.encoding"
	KeyExportEOL    = "export.line_ending"
	KeyExportBlank  = "export.blank"
	KeyExportEmpty  = "export.placeholder"
	KeyExportDir    = "export.dir"
	KeyPDFFontPath  = "pdf.font_path"
)

var settingsKeys = []string{
	KeyListName,
	KeyListTitle,
	KeyExportFormat,
	KeyExportEncode,
	KeyExportEOL,
	KeyExportBlank,
	KeyExportEmpty,
	KeyExportDir,
	KeyPDFFontPath,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or unrecognised values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		List: domain.ListSettings{
			Name:  s.getString(KeyListName, defaults.List.Name),
			Title: s.getString(KeyListTitle, defaults.List.Title),
		},
		Export: domain.ExportSettings{
			Format:      s.getFormat(defaults.Export.Format),
			Encoding:    s.getEncoding(defaults.Export.Encoding),
			LineEnding:  s.getLineEnding(defaults.Export.LineEnding),
			Blank:       s.getBlankPolicy(defaults.Export.Blank),
			Placeholder: s.getString(KeyExportEmpty, defaults.Export.Placeholder),
			OutputDir:   s.configStore.GetString(KeyExportDir), // Empty means working directory
		},
		PDF: domain.PDFSettings{
			FontPath: s.configStore.GetString(KeyPDFFontPath),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value string
	}{
		{KeyListName, settings.List.Name},
		{KeyListTitle, settings.List.Title},
		{KeyExportFormat, settings.Export.Format.String()},
		{KeyExportEncode, settings.Export.Encoding.String()},
		{KeyExportEOL, settings.Export.LineEnding.String()},
		{KeyExportBlank, settings.Export.Blank.String()},
		{KeyExportEmpty, settings.Export.Placeholder},
		{KeyExportDir, settings.Export.OutputDir},
		{KeyPDFFontPath, settings.PDF.FontPath},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set updates a single setting by key, validating enumerated values.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyListName:
		settings.List.Name = value
	case KeyListTitle:
		settings.List.Title = value
	case KeyExportFormat:
		settings.Export.Format = domain.ExportFormat(value)
	case KeyExportEncode:
		settings.Export.Encoding = domain.TextEncoding(value)
	case KeyExportEOL:
		settings.Export.LineEnding = domain.LineEnding(value)
	case KeyExportBlank:
		settings.Export.Blank = domain.BlankPolicy(value)
	case KeyExportEmpty:
		settings.Export.Placeholder = value
	case KeyExportDir:
		settings.Export.OutputDir = value
	case KeyPDFFontPath:
		settings.PDF.FontPath = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns every configuration key Set accepts.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingsKeys))
	copy(out, settingsKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFormat(defaultVal domain.ExportFormat) domain.ExportFormat {
	format := domain.ExportFormat(s.configStore.GetString(KeyExportFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getEncoding(defaultVal domain.TextEncoding) domain.TextEncoding {
	enc := domain.TextEncoding(s.configStore.GetString(KeyExportEncode))
	if !enc.IsValid() {
		return defaultVal
	}
	return enc
}

func (s *SettingsService) getLineEnding(defaultVal domain.LineEnding) domain.LineEnding {
	eol := domain.LineEnding(s.configStore.GetString(KeyExportEOL))
	if !eol.IsValid() {
		return defaultVal
	}
	return eol
}

func (s *SettingsService) getBlankPolicy(defaultVal domain.BlankPolicy) domain.BlankPolicy {
	policy := domain.BlankPolicy(s.configStore.GetString(KeyExportBlank))
	if !policy.IsValid() {
		return defaultVal
	}
	return policy
}
