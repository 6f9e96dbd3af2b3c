package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/services"
)

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	withRealServices(t)

	output, err := execute(t, "settings")
	require.NoError(t, err)

	assert.Contains(t, output, "Current Settings")
	assert.Contains(t, output, "Name: "+domain.DefaultListName)
	assert.Contains(t, output, "Title: "+domain.DefaultTitle)
	assert.Contains(t, output, "Format: Text (.txt)")
	assert.Contains(t, output, "Encoding: utf-8")
	assert.Contains(t, output, "Blank entries: whitespace")
	assert.Contains(t, output, "(working directory)")
	assert.Contains(t, output, "(auto-detect)")
}

func TestSettingsCmd_SetThenShow(t *testing.T) {
	svc := withRealServices(t)

	output, err := execute(t, "settings", "set", "export.format", "pdf")
	require.NoError(t, err)
	assert.Contains(t, output, "export.format = pdf")

	got, err := svc.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFormatPDF, got.Export.Format)

	output, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "Format: PDF (.pdf)")
}

func TestSettingsCmd_SetInvalid(t *testing.T) {
	withRealServices(t)

	tests := []struct {
		key, value string
		want       error
	}{
		{services.KeyExportFormat, "docx", domain.ErrUnsupportedFormat},
		{services.KeyExportEncode, "latin1", domain.ErrUnsupportedEncoding},
		{services.KeyExportBlank, "never", domain.ErrInvalidInput},
		{"list.colour", "blue", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := execute(t, "settings", "set", tt.key, tt.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "invalid value for "+tt.key)
		})
	}
}

func TestSettingsCmd_SetRequiresTwoArgs(t *testing.T) {
	withRealServices(t)

	_, err := execute(t, "settings", "set", "list.name")

	assert.Error(t, err)
}

func TestSettingsCmd_Keys(t *testing.T) {
	svc := withRealServices(t)

	output, err := execute(t, "settings", "keys")
	require.NoError(t, err)

	for _, key := range svc.settings.Keys() {
		assert.Contains(t, output, key)
	}
}

func TestSettingsCmd_NotConfigured(t *testing.T) {
	withServices(t, nil, nil, nil)

	for _, args := range [][]string{
		{"settings"},
		{"settings", "set", "list.name", "x"},
		{"settings", "keys"},
	} {
		_, err := execute(t, args...)
		assert.ErrorIs(t, err, errSettingsNotConfigured, "%v", args)
	}
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "fallback", orDefault("", "fallback"))
	assert.Equal(t, "value", orDefault("value", "fallback"))
}
