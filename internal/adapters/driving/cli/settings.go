package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the list name, export defaults and PDF font.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Change a single setting. Run "bucketlist settings keys" for the accepted keys.

Examples:
  bucketlist settings set list.name 旅行
  bucketlist settings set export.format pdf
  bucketlist settings set export.encoding shift_jis`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[List]")
	cmd.Printf("  Name: %s\n", settings.List.Name)
	cmd.Printf("  Title: %s\n", settings.List.Title)
	cmd.Println()

	cmd.Println("[Export]")
	cmd.Printf("  Format: %s\n", settings.Export.Format.Description())
	cmd.Printf("  Encoding: %s\n", settings.Export.Encoding)
	cmd.Printf("  Line ending: %s\n", settings.Export.LineEnding)
	cmd.Printf("  Blank entries: %s\n", settings.Export.Blank)
	cmd.Printf("  Empty category text: %s\n", settings.Export.Placeholder)
	cmd.Printf("  Output directory: %s\n", orDefault(settings.Export.OutputDir, "(working directory)"))
	cmd.Println()

	cmd.Println("[PDF]")
	cmd.Printf("  Font: %s\n", orDefault(settings.PDF.FontPath, "(auto-detect)"))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrUnsupportedFormat) ||
			errors.Is(err, domain.ErrUnsupportedEncoding) {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
