package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bucketlist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/services"
)

// MockSettingsService is a mock implementation of driving.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsService) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockSettingsService) Keys() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	args := m.Called()
	return args.Get(0).(domain.AppSettings)
}

func defaultSettings() *domain.AppSettings {
	s := domain.DefaultAppSettings()
	return &s
}

func newReadyView(svc *MockSettingsService) *View {
	var v *View
	if svc == nil {
		v = NewView(styles.DefaultStyles(), nil)
	} else {
		v = NewView(styles.DefaultStyles(), svc)
	}
	v.SetDimensions(80, 24)
	v, _ = v.Update(messages.SettingsLoaded{Settings: defaultSettings()})
	return v
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selectField(t *testing.T, v *View, k string) *View {
	t.Helper()
	for i, f := range fields {
		if f.key == k {
			for range i {
				v, _ = v.Update(key("down"))
			}
			return v
		}
	}
	t.Fatalf("no field %q", k)
	return nil
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Equal(t, SectionOverview, v.Section())
	assert.Equal(t, "Initialising...", v.View())
}

func TestFields_MatchSettingsKeys(t *testing.T) {
	svc := services.NewSettingsService(memory.NewConfigStore())

	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	assert.Equal(t, svc.Keys(), keys)
}

func TestFields_AcceptedBySettingsService(t *testing.T) {
	svc := services.NewSettingsService(memory.NewConfigStore())

	for _, f := range fields {
		for _, o := range f.options {
			assert.NoError(t, svc.Set(f.key, o), "%s=%s", f.key, o)
		}
	}
}

func TestInit_LoadsSettings(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(defaultSettings(), nil)

	v := NewView(styles.DefaultStyles(), svc)
	msg := v.Init()()

	loaded, ok := msg.(messages.SettingsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Equal(t, domain.DefaultListName, loaded.Settings.List.Name)
	svc.AssertExpectations(t)
}

func TestInit_NoService(t *testing.T) {
	v := NewView(styles.DefaultStyles(), nil)

	msg := v.Init()().(messages.SettingsLoaded)
	assert.ErrorIs(t, msg.Err, ErrServiceUnavailable)
}

func TestView_RendersCurrentValues(t *testing.T) {
	v := newReadyView(nil)

	out := v.View()
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, domain.DefaultListName)
	assert.Contains(t, out, "utf-8")
	assert.Contains(t, out, "(default)")
}

func TestUpdate_LoadError(t *testing.T) {
	v := newReadyView(nil)

	v, _ = v.Update(messages.SettingsLoaded{Err: errors.New("boom")})
	assert.Contains(t, v.View(), "boom")
}

func TestEsc_ReturnsToMenu(t *testing.T) {
	v := newReadyView(nil)

	_, cmd := v.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestNavigation_StaysInBounds(t *testing.T) {
	v := newReadyView(nil)

	v, _ = v.Update(key("up"))
	assert.Equal(t, 0, v.selected)

	for range len(fields) + 3 {
		v, _ = v.Update(key("j"))
	}
	assert.Equal(t, len(fields)-1, v.selected)
}

func TestChoose_SavesSelectedOption(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Set", "export.encoding", "shift_jis").Return(nil)

	v := newReadyView(svc)
	v = selectField(t, v, "export.encoding")

	v, _ = v.Update(key("enter"))
	require.Equal(t, SectionChoose, v.Section())
	assert.Equal(t, 0, v.option, "cursor starts on the current value")
	assert.Contains(t, v.View(), "(current)")

	v, _ = v.Update(key("down"))
	v, cmd := v.Update(key("enter"))
	assert.Equal(t, SectionOverview, v.Section())
	require.NotNil(t, cmd)

	saved := cmd().(messages.SettingsSaved)
	assert.Equal(t, "export.encoding", saved.Key)
	assert.NoError(t, saved.Err)
	svc.AssertExpectations(t)
}

func TestChoose_EscCancels(t *testing.T) {
	svc := new(MockSettingsService)
	v := newReadyView(svc)
	v = selectField(t, v, "export.format")

	v, _ = v.Update(key("enter"))
	v, cmd := v.Update(key("esc"))

	assert.Equal(t, SectionOverview, v.Section())
	assert.Nil(t, cmd)
	svc.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestEdit_SavesTrimmedText(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Set", "list.name", "旅行").Return(nil)

	v := newReadyView(svc)
	v, _ = v.Update(key("enter"))
	require.Equal(t, SectionEdit, v.Section())
	assert.Equal(t, domain.DefaultListName, v.input.Value())

	v.input.SetValue("  旅行 ")
	v, cmd := v.Update(key("enter"))
	assert.Equal(t, SectionOverview, v.Section())

	saved := cmd().(messages.SettingsSaved)
	assert.Equal(t, "list.name", saved.Key)
	assert.NoError(t, saved.Err)
	svc.AssertExpectations(t)
}

func TestSettingsSaved_ReloadsOnSuccess(t *testing.T) {
	svc := new(MockSettingsService)
	updated := defaultSettings()
	updated.List.Name = "旅行"
	svc.On("Get").Return(updated, nil)

	v := newReadyView(svc)
	v, cmd := v.Update(messages.SettingsSaved{Key: "list.name"})
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())

	out := v.View()
	assert.Contains(t, out, "Saved list.name")
	assert.Contains(t, out, "旅行")
}

func TestSettingsSaved_ShowsError(t *testing.T) {
	v := newReadyView(nil)

	v, cmd := v.Update(messages.SettingsSaved{Key: "list.name", Err: domain.ErrInvalidInput})
	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "invalid input")
}

func TestSettingsReloaded(t *testing.T) {
	svc := new(MockSettingsService)
	svc.On("Get").Return(defaultSettings(), nil)
	v := newReadyView(svc)

	v, cmd := v.Update(messages.SettingsReloaded{})
	require.NotNil(t, cmd)
	assert.Contains(t, v.View(), "reloaded")

	v, cmd = v.Update(messages.SettingsReloaded{Err: errors.New("bad toml")})
	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "bad toml")
}

func TestSave_NoService(t *testing.T) {
	v := newReadyView(nil)

	v = selectField(t, v, "export.blank")
	v, _ = v.Update(key("enter"))
	_, cmd := v.Update(key("enter"))

	saved := cmd().(messages.SettingsSaved)
	assert.ErrorIs(t, saved.Err, ErrServiceUnavailable)
}

func TestReset(t *testing.T) {
	v := newReadyView(nil)
	v, _ = v.Update(key("down"))
	v, _ = v.Update(key("enter"))
	v.notice = "x"

	v.Reset()

	assert.Equal(t, SectionOverview, v.Section())
	assert.Equal(t, 0, v.selected)
	assert.Empty(t, v.notice)
	assert.False(t, v.input.Focused())
}
