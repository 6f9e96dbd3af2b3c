package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
)

var (
	exportFrom          string
	exportFormat        string
	exportOut           string
	exportEncoding      string
	exportInputEncoding string
	exportBlank         string
	exportEOL           string
	exportName          string
	exportTitle         string
	exportPreview       bool
	exportJSON          bool
)

// stdinIsTerminal reports whether stdin is interactive. Tests replace it.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a list to text or PDF",
	Long: `Reads a text export, re-renders it with the current settings and saves the
result as "<list name>_<timestamp>.<ext>".

The list is read from --from, or from stdin when stdin is not a terminal.
With no input an empty list is exported. Flags override the configured
defaults for this export only.

Examples:
  bucketlist export --from list.txt --format pdf
  cat list.txt | bucketlist export --encoding shift_jis --eol crlf
  bucketlist export --from list.txt --preview`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	flags := exportCmd.Flags()
	flags.StringVarP(&exportFrom, "from", "f", "", `text export to read ("-" for stdin)`)
	flags.StringVar(&exportFormat, "format", "", "output format: txt or pdf")
	flags.StringVarP(&exportOut, "out", "o", "", "output directory")
	flags.StringVar(&exportEncoding, "encoding", "", "text output encoding: utf-8, shift_jis or utf-16le")
	flags.StringVar(&exportInputEncoding, "input-encoding", "", "encoding of the input when it has no byte order mark")
	flags.StringVar(&exportBlank, "blank", "", "which entries count as blank: whitespace or empty")
	flags.StringVar(&exportEOL, "eol", "", "text line ending: lf or crlf")
	flags.StringVar(&exportName, "name", "", "list name used in the filename")
	flags.StringVar(&exportTitle, "title", "", "title printed at the top of PDF exports")
	flags.BoolVar(&exportPreview, "preview", false, "write the rendered document to stdout instead of saving it")
	flags.BoolVar(&exportJSON, "json", false, "output the export result as JSON")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if formService == nil || exportService == nil {
		return errServicesNotConfigured
	}

	opts, err := exportOptions(cmd)
	if err != nil {
		return err
	}

	data, err := readExportInput(cmd)
	if err != nil {
		return err
	}
	if data != nil {
		if err := formService.Import(data, domain.TextEncoding(exportInputEncoding), opts.Placeholder); err != nil {
			return fmt.Errorf("failed to read list: %w", err)
		}
	}

	state := formService.Snapshot()

	if exportPreview {
		rendered, err := exportService.Preview(state, opts)
		if err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(rendered)
		return err
	}

	result, err := exportService.Export(cmd.Context(), state, opts)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if exportJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Path)
	return err
}

// exportOptions starts from the configured settings and applies the flags
// that were set on the command line.
func exportOptions(cmd *cobra.Command) (domain.ExportOptions, error) {
	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		current, err := settingsService.Get()
		if err != nil {
			return domain.ExportOptions{}, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *current
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		settings.List.Name = exportName
	}
	if flags.Changed("title") {
		settings.List.Title = exportTitle
	}
	if flags.Changed("encoding") {
		settings.Export.Encoding = domain.TextEncoding(exportEncoding)
	}
	if flags.Changed("eol") {
		settings.Export.LineEnding = domain.LineEnding(exportEOL)
	}
	if flags.Changed("blank") {
		settings.Export.Blank = domain.BlankPolicy(exportBlank)
	}
	if flags.Changed("out") {
		settings.Export.OutputDir = exportOut
	}
	if flags.Changed("format") {
		settings.Export.Format = domain.ExportFormat(exportFormat)
	}

	if err := settings.Validate(); err != nil {
		return domain.ExportOptions{}, err
	}
	return settings.ExportOptions(""), nil
}

// readExportInput returns the list to import, or nil when there is none.
func readExportInput(cmd *cobra.Command) ([]byte, error) {
	switch {
	case exportFrom == "-":
		return readAll(cmd.InOrStdin())
	case exportFrom != "":
		data, err := os.ReadFile(exportFrom)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", exportFrom, err)
		}
		return data, nil
	case !stdinIsTerminal():
		data, err := readAll(cmd.InOrStdin())
		if err != nil || len(data) == 0 {
			return nil, err
		}
		return data, nil
	default:
		return nil, nil
	}
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

