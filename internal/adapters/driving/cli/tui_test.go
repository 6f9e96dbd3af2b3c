package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/messages"
)

func TestTUICmd_Exists(t *testing.T) {
	// Verify the tui command is registered
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_LongDescription(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "interactive terminal user interface")
	assert.Contains(t, tuiCmd.Long, "Controls:")
}

func TestSetTUIConfig(t *testing.T) {
	reloads := make(chan error)
	config := &TUIConfig{Reloads: reloads}

	SetTUIConfig(config)
	defer SetTUIConfig(nil)

	assert.Equal(t, config, tuiConfig)
}

func TestTUICmd_HelpOutput(t *testing.T) {
	output, err := execute(t, "tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, output, "interactive terminal user interface")
	assert.Contains(t, output, "Ctrl+P")
}

func TestTUICmd_MissingServices(t *testing.T) {
	withServices(t, nil, nil, nil)

	_, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}

func TestForwardReloads(t *testing.T) {
	reloads := make(chan error, 2)
	reloads <- nil
	reloads <- errors.New("bad toml")
	close(reloads)

	var got []tea.Msg
	forwardReloads(context.Background(), reloads, func(msg tea.Msg) {
		got = append(got, msg)
	})

	require.Len(t, got, 2)
	assert.Equal(t, messages.SettingsReloaded{}, got[0])
	assert.EqualError(t, got[1].(messages.SettingsReloaded).Err, "bad toml")
}

func TestForwardReloads_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		forwardReloads(ctx, make(chan error), func(tea.Msg) {})
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forwardReloads did not return after cancel")
	}
}
