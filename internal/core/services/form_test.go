package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bucketlist/internal/adapters/driven/render/text"
	"github.com/custodia-labs/bucketlist/internal/core/domain"
)

func TestFormService_SetEntry(t *testing.T) {
	service := NewFormService(nil)

	service.SetEntry(domain.CategoryHealth, 4, "Run a marathon")

	assert.Equal(t, "Run a marathon", service.Entry(domain.CategoryHealth, 4))
	assert.Equal(t, "", service.Entry(domain.CategoryHealth, 3))
}

func TestFormService_SetEntry_PanicsOnBadIndex(t *testing.T) {
	service := NewFormService(nil)

	assert.Panics(t, func() { service.SetEntry(domain.CategoryWork, domain.ItemsPerCategory, "x") })
	assert.Panics(t, func() { service.SetEntry("space", 0, "x") })
}

func TestFormService_SnapshotIsIndependent(t *testing.T) {
	service := NewFormService(nil)
	service.SetEntry(domain.CategoryWork, 0, "before")

	snap := service.Snapshot()
	service.SetEntry(domain.CategoryWork, 0, "after")

	assert.Equal(t, "before", snap.Entry(domain.CategoryWork, 0))
	assert.Equal(t, "after", service.Entry(domain.CategoryWork, 0))
}

func TestFormService_Load(t *testing.T) {
	service := NewFormService(nil)
	service.SetEntry(domain.CategoryWork, 0, "old")

	var state domain.FormState
	state.SetEntry(domain.CategoryHobby, 19, "new")
	service.Load(state)

	assert.Equal(t, "", service.Entry(domain.CategoryWork, 0))
	assert.Equal(t, "new", service.Entry(domain.CategoryHobby, 19))

	state.SetEntry(domain.CategoryHobby, 19, "changed")
	assert.Equal(t, "new", service.Entry(domain.CategoryHobby, 19))
}

func TestFormService_Clear(t *testing.T) {
	service := NewFormService(nil)
	service.SetEntry(domain.CategoryFamily, 2, "x")

	service.Clear()

	snap := service.Snapshot()
	assert.Equal(t, 0, snap.FilledCount(domain.BlankEmpty))
}

func TestFormService_ConcurrentAccess(t *testing.T) {
	service := NewFormService(nil)

	var wg sync.WaitGroup
	for i := 0; i < domain.ItemsPerCategory; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			service.SetEntry(domain.CategoryWork, i, "x")
		}(i)
		go func() {
			defer wg.Done()
			_ = service.Snapshot()
		}()
	}
	wg.Wait()

	snap := service.Snapshot()
	assert.Equal(t, domain.ItemsPerCategory, snap.FilledCount(domain.BlankWhitespace))
}

func TestFormService_Import(t *testing.T) {
	service := NewFormService(text.NewDecoder())
	service.SetEntry(domain.CategoryWealth, 0, "replaced")

	err := service.Import([]byte("\xEF\xBB\xBF【仕事】\n1. Ship a product\n\n【家庭】\nなし"), domain.EncodingUTF8, "なし")
	require.NoError(t, err)

	assert.Equal(t, "Ship a product", service.Entry(domain.CategoryWork, 0))
	assert.Equal(t, "", service.Entry(domain.CategoryWealth, 0))
}

func TestFormService_Import_InvalidLeavesFormUnchanged(t *testing.T) {
	service := NewFormService(text.NewDecoder())
	service.SetEntry(domain.CategoryWork, 0, "keep")

	err := service.Import([]byte("not an export"), domain.EncodingUTF8, "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "keep", service.Entry(domain.CategoryWork, 0))
}

func TestFormService_Import_WithoutDecoder(t *testing.T) {
	service := NewFormService(nil)

	err := service.Import([]byte("【仕事】"), domain.EncodingUTF8, "")

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
