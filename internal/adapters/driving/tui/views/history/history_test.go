package history

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bucketlist/internal/core/domain"
)

type stubExport struct {
	history []domain.ExportResult
}

func (s *stubExport) Export(context.Context, domain.FormState, domain.ExportOptions) (*domain.ExportResult, error) {
	return nil, nil
}

func (s *stubExport) Preview(domain.FormState, domain.ExportOptions) ([]byte, error) {
	return nil, nil
}

func (s *stubExport) History() []domain.ExportResult {
	return s.history
}

func results() []domain.ExportResult {
	at := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	return []domain.ExportResult{
		{Format: domain.ExportFormatText, Path: "/out/first.txt", Size: 512, CreatedAt: at},
		{Format: domain.ExportFormatPDF, Path: "/out/second.pdf", Size: 40 << 10, CreatedAt: at.Add(time.Minute)},
	}
}

func TestView_Init_LoadsHistory(t *testing.T) {
	view := NewView(nil, &stubExport{history: results()})

	cmd := view.Init()
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.HistoryLoaded)
	require.True(t, ok)
	assert.Len(t, msg.Results, 2)
}

func TestView_Init_NoService(t *testing.T) {
	view := NewView(nil, nil)

	assert.Nil(t, view.Init())
}

func TestView_HistoryLoaded_NewestFirst(t *testing.T) {
	view := NewView(nil, nil)

	view.Update(messages.HistoryLoaded{Results: results()})

	require.Len(t, view.Results(), 2)
	assert.Equal(t, "/out/second.pdf", view.Results()[0].Path)
	assert.Equal(t, "/out/first.txt", view.Results()[1].Path)
}

func TestView_View(t *testing.T) {
	view := NewView(nil, nil)
	view.SetDimensions(120, 24)
	view.Update(messages.HistoryLoaded{Results: results()})

	output := view.View()

	assert.Contains(t, output, "/out/second.pdf")
	assert.Contains(t, output, "40.0 KiB")
	assert.Contains(t, output, "512 B")
	assert.Contains(t, output, "> ")
}

func TestView_View_Empty(t *testing.T) {
	view := NewView(nil, nil)
	view.SetDimensions(120, 24)

	assert.Contains(t, view.View(), "Nothing exported yet")
}

func TestView_Navigate(t *testing.T) {
	view := NewView(nil, nil)
	view.Update(messages.HistoryLoaded{Results: results()})

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.selected)

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.selected)
}

func TestView_Esc(t *testing.T) {
	view := NewView(nil, nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "0 B", humanSize(0))
	assert.Equal(t, "1.5 KiB", humanSize(1536))
	assert.Equal(t, "2.0 MiB", humanSize(2<<20))
}
