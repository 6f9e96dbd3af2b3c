package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui"
	"github.com/custodia-labs/bucketlist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bucketlist/internal/logger"
)

// TUIConfig holds the background work that runs alongside the TUI.
type TUIConfig struct {
	// Watch blocks until the context is cancelled, watching the
	// configuration file. Optional.
	Watch func(ctx context.Context) error

	// Reloads delivers the outcome of each configuration reload. Optional.
	Reloads <-chan error
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for editing the list.

Entries are grouped into six category tabs of twenty rows each. Changes to
the configuration file are picked up while the editor is open.

Controls:
  ↑/↓, Enter     - Previous / next entry
  Tab, Shift+Tab - Next / previous category
  Ctrl+S         - Export as text
  Ctrl+P         - Export as PDF
  Esc            - Back
  Ctrl+C         - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(formService, exportService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	// The alternate screen owns the terminal; logs go to the log file only.
	logger.SetConsole(false)
	defer logger.SetConsole(true)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if tuiConfig != nil {
		if tuiConfig.Watch != nil {
			go func() {
				if err := tuiConfig.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
					// Editing still works without hot reload.
					logger.Warn("config watcher stopped", "error", err)
				}
			}()
		}
		if tuiConfig.Reloads != nil {
			go forwardReloads(ctx, tuiConfig.Reloads, p.Send)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// forwardReloads posts every reload outcome to the program until ctx is done
// or the channel is closed.
func forwardReloads(ctx context.Context, reloads <-chan error, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-reloads:
			if !ok {
				return
			}
			send(messages.SettingsReloaded{Err: err})
		}
	}
}
