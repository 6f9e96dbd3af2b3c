// Package cli provides the command-line interface for bucketlist.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bucketlist/internal/core/ports/driving"
	"github.com/custodia-labs/bucketlist/internal/logger"
)

// version is overridden at build time with -ldflags.
var version = "dev"

// Services injected by the composition root.
var (
	formService     driving.FormService
	exportService   driving.ExportService
	settingsService driving.SettingsService
)

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	Verbose   bool
	ConfigDir string
	LogFile   string
}

// BootstrapFunc builds the services once flags are parsed. The returned
// cleanup runs when the command finishes.
type BootstrapFunc func(opts GlobalOptions) (cleanup func(), err error)

var (
	globalOpts GlobalOptions
	bootstrap  BootstrapFunc
	cleanup    func()
)

var errServicesNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "bucketlist",
	Short: "Write down a hundred things to do before you die",
	Long: `bucketlist is a form for a personal bucket list: six life categories
with twenty entries each. Filled-in entries are exported as a plain text file
or a paginated PDF named after the list and the time of export.

Run without a command to open the interactive editor.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
	RunE:              runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&globalOpts.ConfigDir, "config-dir", "", "configuration directory (default ~/.bucketlist)")
	flags.StringVar(&globalOpts.LogFile, "log-file", "", "also write JSON logs to this file")
}

// SetServices injects the core services used by the commands.
func SetServices(form driving.FormService, export driving.ExportService, settings driving.SettingsService) {
	formService = form
	exportService = export
	settingsService = settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap registers the function that wires services after flag parsing.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

func runBootstrap(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(globalOpts.Verbose)
	if globalOpts.LogFile != "" {
		if err := logger.SetFile(globalOpts.LogFile); err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
	}

	if bootstrap == nil {
		return nil
	}

	done, err := bootstrap(globalOpts)
	if err != nil {
		return err
	}
	cleanup = done
	return nil
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
		if err := logger.Close(); err != nil {
			logger.Warn("closing log file", "error", err)
		}
	}()

	return rootCmd.Execute()
}
