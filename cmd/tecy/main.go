// Package main is the entry point for the tecy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/tecy/internal/adapters/driven/artifact"
	"github.com/custodia-labs/tecy/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tecy/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tecy/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tecy/internal/adapters/driving/cli"
	"github.com/custodia-labs/tecy/internal/connectors/filesystem"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/core/services"
	"github.com/custodia-labs/tecy/internal/extractors/htmldoc"
	"github.com/custodia-labs/tecy/internal/extractors/jsondoc"
	"github.com/custodia-labs/tecy/internal/extractors/pdf"
	"github.com/custodia-labs/tecy/internal/extractors/plaintext"
	"github.com/custodia-labs/tecy/internal/extractors/spreadsheet"
	"github.com/custodia-labs/tecy/internal/extractors/xmldoc"
	"github.com/custodia-labs/tecy/internal/postprocessors"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	closeStore := func() {}
	defer func() { closeStore() }()

	cli.SetVersion(version)
	// Nothing touches ~/.tecy until a command actually needs a service.
	cli.SetServicesLoader(func() (cli.Services, error) {
		s, closer, err := buildServices()
		closeStore = closer
		return s, err
	})

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}

// buildServices wires the extractors, stores and services. The returned
// func releases the history database.
func buildServices() (cli.Services, func(), error) {
	configStore := openConfigStore()
	settingsService := services.NewSettingsService(configStore)

	// Capability flags are resolved once per process.
	dispatcher := services.NewDispatcher(
		settingsService.Capabilities(),
		plaintext.New(),
		pdf.New(),
		spreadsheet.New(),
		jsondoc.New(),
		xmldoc.New(),
		htmldoc.New(),
	)

	writer, err := artifact.NewWriter("")
	if err != nil {
		return cli.Services{}, func() {}, fmt.Errorf("resolving output directory: %w", err)
	}

	runStore, closeStore := openRunStore(settingsService.HistoryEnabled())
	cleanerService := services.NewCleanerService(dispatcher, postprocessors.Default(), writer, runStore)

	return cli.Services{
		Cleaner:  cleanerService,
		History:  services.NewHistoryService(runStore),
		Settings: settingsService,
		Watch:    services.NewWatchService(cleanerService, filesystem.NewWatcher()),
	}, closeStore, nil
}

// openConfigStore falls back to built-in defaults when the config file
// cannot be read, so a broken file never blocks cleaning.
func openConfigStore() driven.ConfigStore {
	store, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", err)
		return memory.NewConfigStore()
	}
	return store
}

// openRunStore opens the history database. Without it, runs are kept in
// memory for the lifetime of the process.
func openRunStore(enabled bool) (driven.RunStore, func()) {
	if !enabled {
		return nil, func() {}
	}
	store, err := sqlite.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: run history unavailable: %v\n", err)
		return memory.NewRunStore(), func() {}
	}
	return store.RunStore(), func() { store.Close() }
}
