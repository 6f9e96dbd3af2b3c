package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/bucketlist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bucketlist/internal/core/services"
)

func TestNewPorts(t *testing.T) {
	form := services.NewFormService(nil)
	export := services.NewExportService(nil, nil)
	settings := services.NewSettingsService(memory.NewConfigStore())

	ports := NewPorts(form, export, settings)

	assert.Equal(t, form, ports.Form)
	assert.Equal(t, export, ports.Export)
	assert.Equal(t, settings, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	form := services.NewFormService(nil)
	export := services.NewExportService(nil, nil)

	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"nil ports", nil, ErrInvalidPorts},
		{"missing form", &Ports{Export: export}, ErrMissingFormService},
		{"missing export", &Ports{Form: form}, ErrMissingExportService},
		{"settings optional", &Ports{Form: form, Export: export}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
