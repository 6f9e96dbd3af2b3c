package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, DefaultListName, s.List.Name)
	assert.Equal(t, DefaultTitle, s.List.Title)
	assert.Equal(t, ExportFormatText, s.Export.Format)
	assert.Equal(t, EncodingUTF8, s.Export.Encoding)
	assert.Equal(t, LineEndingLF, s.Export.LineEnding)
	assert.Equal(t, BlankWhitespace, s.Export.Blank)
	assert.Equal(t, DefaultPlaceholder, s.Export.Placeholder)
	assert.Empty(t, s.Export.OutputDir)
	require.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppSettings)
		target error
	}{
		{"empty list name", func(s *AppSettings) { s.List.Name = "" }, ErrInvalidInput},
		{"bad format", func(s *AppSettings) { s.Export.Format = "docx" }, ErrUnsupportedFormat},
		{"bad encoding", func(s *AppSettings) { s.Export.Encoding = "latin1" }, ErrUnsupportedEncoding},
		{"bad line ending", func(s *AppSettings) { s.Export.LineEnding = "cr" }, ErrInvalidInput},
		{"bad blank policy", func(s *AppSettings) { s.Export.Blank = "never" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
		})
	}
}

func TestAppSettings_ExportOptions(t *testing.T) {
	s := DefaultAppSettings()
	s.Export.OutputDir = "/tmp/out"
	s.PDF.FontPath = "/fonts/ipaexg.ttf"

	opts := s.ExportOptions("")
	assert.Equal(t, ExportFormatText, opts.Format)
	assert.Equal(t, DefaultListName, opts.ListName)
	assert.Equal(t, "/tmp/out", opts.OutputDir)
	assert.Equal(t, "/fonts/ipaexg.ttf", opts.FontPath)

	opts = s.ExportOptions(ExportFormatPDF)
	assert.Equal(t, ExportFormatPDF, opts.Format)
}

func TestBlankPolicy_IsBlank(t *testing.T) {
	tests := []struct {
		policy   BlankPolicy
		entry    string
		expected bool
	}{
		{BlankEmpty, "", true},
		{BlankEmpty, " ", false},
		{BlankEmpty, "x", false},
		{BlankWhitespace, "", true},
		{BlankWhitespace, " \t　", true},
		{BlankWhitespace, " x ", false},
		{BlankPolicy("unknown"), "  ", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.policy.IsBlank(tt.entry), "%s %q", tt.policy, tt.entry)
	}
}

func TestExportFormat(t *testing.T) {
	assert.True(t, ExportFormatText.IsValid())
	assert.True(t, ExportFormatPDF.IsValid())
	assert.False(t, ExportFormat("docx").IsValid())
	assert.Equal(t, "pdf", ExportFormatPDF.Extension())
	assert.Equal(t, unknownDescription, ExportFormat("docx").Description())
}

func TestLineEnding_Separator(t *testing.T) {
	assert.Equal(t, "\n", LineEndingLF.Separator())
	assert.Equal(t, "\r\n", LineEndingCRLF.Separator())
}
