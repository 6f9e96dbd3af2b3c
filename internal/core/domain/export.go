package domain

import (
	"strings"
	"time"
)

// ExportFormat identifies the kind of document an export produces.
type ExportFormat string

// Available export formats.
const (
	// ExportFormatText is a plain text file.
	ExportFormatText ExportFormat = "txt"

	// ExportFormatPDF is a paginated A4 document.
	ExportFormatPDF ExportFormat = "pdf"
)

// AllExportFormats returns every supported export format.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{ExportFormatText, ExportFormatPDF}
}

// IsValid returns true if the format is recognised.
func (f ExportFormat) IsValid() bool {
	return f == ExportFormatText || f == ExportFormatPDF
}

// Extension returns the file extension, without the dot.
func (f ExportFormat) Extension() string {
	return string(f)
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f ExportFormat) Description() string {
	switch f {
	case ExportFormatText:
		return "Text (.txt)"
	case ExportFormatPDF:
		return "PDF (.pdf)"
	default:
		return unknownDescription
	}
}

// TextEncoding identifies the byte encoding of a text export.
type TextEncoding string

// Available text encodings.
const (
	// EncodingUTF8 is UTF-8 prefixed with a byte order mark.
	EncodingUTF8 TextEncoding = "utf-8"

	// EncodingShiftJIS is Shift_JIS, for older Japanese tooling.
	EncodingShiftJIS TextEncoding = "shift_jis"

	// EncodingUTF16LE is little-endian UTF-16 with a byte order mark.
	EncodingUTF16LE TextEncoding = "utf-16le"
)

// AllTextEncodings returns every supported text encoding.
func AllTextEncodings() []TextEncoding {
	return []TextEncoding{EncodingUTF8, EncodingShiftJIS, EncodingUTF16LE}
}

// IsValid returns true if the encoding is recognised.
func (e TextEncoding) IsValid() bool {
	switch e {
	case EncodingUTF8, EncodingShiftJIS, EncodingUTF16LE:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (e TextEncoding) String() string {
	return string(e)
}

// BlankPolicy decides which entries are left out of an export.
type BlankPolicy string

// Available blank policies.
const (
	// BlankEmpty treats only the empty string as blank.
	BlankEmpty BlankPolicy = "empty"

	// BlankWhitespace treats empty and whitespace-only strings as blank.
	BlankWhitespace BlankPolicy = "whitespace"
)

// AllBlankPolicies returns every supported blank policy.
func AllBlankPolicies() []BlankPolicy {
	return []BlankPolicy{BlankWhitespace, BlankEmpty}
}

// IsValid returns true if the policy is recognised.
func (p BlankPolicy) IsValid() bool {
	return p == BlankEmpty || p == BlankWhitespace
}

// IsBlank reports whether the entry is left out of an export.
// Unrecognised policies behave like BlankWhitespace.
func (p BlankPolicy) IsBlank(entry string) bool {
	if p == BlankEmpty {
		return entry == ""
	}
	return strings.TrimSpace(entry) == ""
}

// String returns the string representation.
func (p BlankPolicy) String() string {
	return string(p)
}

// LineEnding is the line separator used in text exports.
type LineEnding string

// Available line endings.
const (
	LineEndingLF   LineEnding = "lf"
	LineEndingCRLF LineEnding = "crlf"
)

// IsValid returns true if the line ending is recognised.
func (l LineEnding) IsValid() bool {
	return l == LineEndingLF || l == LineEndingCRLF
}

// Separator returns the byte sequence for the line ending.
func (l LineEnding) Separator() string {
	if l == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// String returns the string representation.
func (l LineEnding) String() string {
	return string(l)
}

// ExportOptions controls a single export.
type ExportOptions struct {
	// Format selects the renderer.
	Format ExportFormat

	// ListName is the filename stem.
	ListName string

	// Title is printed at the top of paginated documents.
	Title string

	// Placeholder replaces the item list of a category with no entries.
	Placeholder string

	// Blank decides which entries are skipped.
	Blank BlankPolicy

	// Encoding is the byte encoding of text exports.
	Encoding TextEncoding

	// LineEnding is the line separator of text exports.
	LineEnding LineEnding

	// OutputDir is the directory the file is saved into.
	OutputDir string

	// FontPath is a TrueType font embedded into PDF exports.
	FontPath string
}

// ExportResult describes a completed export.
type ExportResult struct {
	ID        string       `json:"id"`
	Format    ExportFormat `json:"format"`
	Filename  string       `json:"filename"`
	Path      string       `json:"path"`
	MIMEType  string       `json:"mime_type"`
	Size      int          `json:"size"`
	CreatedAt time.Time    `json:"created_at"`
}
