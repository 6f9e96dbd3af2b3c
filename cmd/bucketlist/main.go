// Command bucketlist is a terminal form for writing a personal bucket list
// and exporting it as text or PDF.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/bucketlist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bucketlist/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/bucketlist/internal/adapters/driven/render/pdf"
	"github.com/custodia-labs/bucketlist/internal/adapters/driven/render/text"
	"github.com/custodia-labs/bucketlist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bucketlist/internal/adapters/driving/cli"
	"github.com/custodia-labs/bucketlist/internal/core/services"
	"github.com/custodia-labs/bucketlist/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services once the
// global flags are known.
func bootstrap(opts cli.GlobalOptions) (func(), error) {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening configuration: %w", err)
	}
	logger.Debug("configuration loaded", "path", store.Path())

	settingsService := services.NewSettingsService(store)
	formService := services.NewFormService(text.NewDecoder())
	exportService := services.NewExportService(
		filesystem.NewSaver(),
		memory.NewHistoryStore(),
		text.New(),
		pdf.New(),
	)
	cli.SetServices(formService, exportService, settingsService)

	reloads := make(chan error, 1)
	watcher, err := file.NewWatcher(store, file.DefaultReloadDebounce, func(err error) {
		select {
		case reloads <- err:
		default:
			// A reload is already pending; the TUI re-reads every setting.
		}
	})
	if err != nil {
		// Hot reload is optional.
		logger.Warn("config watcher unavailable", "error", err)
		return func() {}, nil
	}

	cli.SetTUIConfig(&cli.TUIConfig{
		Watch:   watcher.Run,
		Reloads: reloads,
	})

	return func() {
		if err := watcher.Close(); err != nil {
			logger.Warn("closing config watcher", "error", err)
		}
	}, nil
}
