package domain

import "fmt"

const unknownDescription = "Unknown"

// Default values used when no configuration is stored.
const (
	DefaultListName    = "やりたいことリスト"
	DefaultTitle       = "やりたいことリスト100個"
	DefaultPlaceholder = "なし"
)

// ListSettings names the list.
type ListSettings struct {
	// Name is the filename stem of exports.
	Name string

	// Title heads paginated exports and the form view.
	Title string
}

// ExportSettings holds export defaults.
type ExportSettings struct {
	Format      ExportFormat
	Encoding    TextEncoding
	LineEnding  LineEnding
	Blank       BlankPolicy
	Placeholder string

	// OutputDir is where exports are saved. Empty means the working directory.
	OutputDir string
}

// PDFSettings holds PDF rendering configuration.
type PDFSettings struct {
	// FontPath is a TrueType font able to render the list's script.
	// Empty means probe well-known system font locations.
	FontPath string
}

// AppSettings is the full application configuration.
type AppSettings struct {
	List   ListSettings
	Export ExportSettings
	PDF    PDFSettings
}

// DefaultAppSettings returns the settings used before anything is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		List: ListSettings{
			Name:  DefaultListName,
			Title: DefaultTitle,
		},
		Export: ExportSettings{
			Format:      ExportFormatText,
			Encoding:    EncodingUTF8,
			LineEnding:  LineEndingLF,
			Blank:       BlankWhitespace,
			Placeholder: DefaultPlaceholder,
		},
	}
}

// Validate checks that every enumerated setting is recognised.
func (s *AppSettings) Validate() error {
	if s.List.Name == "" {
		return fmt.Errorf("%w: list name is empty", ErrInvalidInput)
	}
	if !s.Export.Format.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, s.Export.Format)
	}
	if !s.Export.Encoding.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s.Export.Encoding)
	}
	if !s.Export.LineEnding.IsValid() {
		return fmt.Errorf("%w: line ending %q", ErrInvalidInput, s.Export.LineEnding)
	}
	if !s.Export.Blank.IsValid() {
		return fmt.Errorf("%w: blank policy %q", ErrInvalidInput, s.Export.Blank)
	}
	return nil
}

// ExportOptions derives the options for one export in the given format.
// An empty format uses the configured default.
func (s *AppSettings) ExportOptions(format ExportFormat) ExportOptions {
	if format == "" {
		format = s.Export.Format
	}
	return ExportOptions{
		Format:      format,
		ListName:    s.List.Name,
		Title:       s.List.Title,
		Placeholder: s.Export.Placeholder,
		Blank:       s.Export.Blank,
		Encoding:    s.Export.Encoding,
		LineEnding:  s.Export.LineEnding,
		OutputDir:   s.Export.OutputDir,
		FontPath:    s.PDF.FontPath,
	}
}
