// Package cli implements the tecy command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driving"
	"github.com/custodia-labs/tecy/internal/logger"
)

// version is overridden at build time with -ldflags.
var version = "dev"

// Services wired by main.
var (
	cleanerService  driving.CleanerService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	watchService    driving.WatchService
)

// verbose is bound to the --verbose flag.
var verbose bool

// servicesLoader builds the services the first time a command needs them.
var servicesLoader func() (Services, error)

// annotationNoServices marks commands that run without any services.
const annotationNoServices = "tecy/no-services"

// Services holds the driving ports the commands call into.
type Services struct {
	Cleaner  driving.CleanerService
	History  driving.HistoryService
	Settings driving.SettingsService
	Watch    driving.WatchService
}

// SetServices injects the driving ports used by the commands.
func SetServices(s Services) {
	cleanerService = s.Cleaner
	historyService = s.History
	settingsService = s.Settings
	watchService = s.Watch
}

// SetServicesLoader defers building the services until a command that
// uses them runs. Help, version and rejected invocations never call load.
func SetServicesLoader(load func() (Services, error)) {
	servicesLoader = load
}

// loadServices calls the loader at most once.
func loadServices() error {
	if servicesLoader == nil {
		return nil
	}
	load := servicesLoader
	servicesLoader = nil

	s, err := load()
	if err != nil {
		return err
	}
	SetServices(s)
	return nil
}

func needsServices(cmd *cobra.Command, args []string) bool {
	switch {
	case cmd == rootCmd:
		return len(args) > 0
	case cmd.Name() == "help":
		return false
	default:
		return cmd.Annotations[annotationNoServices] == ""
	}
}

// SetVersion sets the version reported by `tecy version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "tecy [file]",
	Short: "Turn a document into cleaned plain text",
	Long: `tecy reads a PDF, spreadsheet, JSON, XML, HTML or plain-text file,
extracts its text and writes a cleaned copy to ~/.tecy/<name>.txt.

Every line is stripped of URLs, digits and punctuation. The remaining
words are joined with ':' and lines that end up empty are dropped.

Examples:
  # Clean a CSV export
  tecy report.final.csv        # writes ~/.tecy/report.final.txt

  # A file named like a command is cleaned when it exists
  tecy ./version

  # Show what each extractor did
  tecy --verbose invoice.pdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle: needsServices refers to rootCmd.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		if !needsServices(cmd, args) {
			return nil
		}
		if err := loadServices(); err != nil {
			cmd.SilenceUsage = true
			return err
		}
		return nil
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	rootCmd.SetArgs(routeArgs(os.Args[1:]))
	return rootCmd.ExecuteContext(ctx)
}

// routeArgs treats a lone argument that names both a subcommand and an
// existing file as the input path, so `tecy version` cleans ./version
// when that file exists.
func routeArgs(args []string) []string {
	if len(args) != 1 || !isSubcommand(args[0]) {
		return args
	}
	info, err := os.Stat(args[0])
	if err != nil || info.IsDir() {
		return args
	}
	return []string{"." + string(filepath.Separator) + args[0]}
}

func isSubcommand(name string) bool {
	if name == "help" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func runClean(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	if cleanerService == nil {
		return errors.New("cleaner service not configured")
	}

	// Past argument parsing, failures are about the file, not the invocation.
	cmd.SilenceUsage = true

	run, err := cleanerService.Process(cmd.Context(), args[0])
	p := newPrinter(cmd.OutOrStdout())
	if run != nil {
		printAdvisories(cmd, p, run.Advisories)
	}
	if err != nil {
		return describeFailure(args[0], err)
	}

	printRun(cmd, p, run)
	return nil
}

// describeFailure turns a fatal pipeline error into a user-facing message.
func describeFailure(path string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("input file %s does not exist", path)
	case errors.Is(err, domain.ErrDecodeFailed):
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	case errors.Is(err, domain.ErrWriteFailed):
		return fmt.Errorf("writing output for %s: %w", filepath.Base(path), err)
	default:
		return fmt.Errorf("cleaning %s: %w", path, err)
	}
}

func printAdvisories(cmd *cobra.Command, p *printer, advisories []string) {
	for _, a := range advisories {
		cmd.Println(p.warning("Notice: " + a))
	}
}

func printRun(cmd *cobra.Command, p *printer, run *domain.Run) {
	cmd.Printf("%s %s\n", p.success("Wrote"), run.OutputPath)

	source := run.Extractor
	if run.Encoding != "" {
		source = fmt.Sprintf("%s (%s)", run.Extractor, run.Encoding)
	}
	cmd.Println(p.muted(fmt.Sprintf("  extractor: %s, lines: %d kept of %d",
		source, run.CleanedLines, run.RawLines)))
}
