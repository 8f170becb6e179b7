package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in ~/.tecy/config.toml.

Extractors that are switched off are skipped and their files are read
as plain text instead.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsExtractorCmd = &cobra.Command{
	Use:   "extractor [name] [on|off]",
	Short: "Enable or disable an extractor",
	Long: `Enable or disable a format extractor.

Available extractors:
  pdf          - PDF documents
  spreadsheet  - Excel workbooks
  json         - JSON documents
  xml          - XML documents
  html         - HTML documents

Example:
  tecy settings extractor pdf off`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsExtractor,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsExtractorCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	caps := settingsService.Capabilities()
	p := newPrinter(cmd.OutOrStdout())

	cmd.Println(p.title("Current Settings"))
	cmd.Printf("  Config file: %s\n", settingsService.ConfigPath())
	cmd.Println()

	cmd.Println("[Extractors]")
	for _, f := range domain.OptionalFormats() {
		cmd.Printf("  %-12s %s\n", f, onOff(caps.Enabled(f)))
	}
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  %-12s %s\n", "enabled", onOff(settingsService.HistoryEnabled()))

	return nil
}

func runSettingsExtractor(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	format, err := domain.ParseFormat(args[0])
	if err != nil || !format.IsOptional() {
		return fmt.Errorf("unknown extractor %q (valid: %s)", args[0], optionalNames())
	}

	enabled, err := parseOnOff(args[1])
	if err != nil {
		return err
	}

	if err := settingsService.SetExtractorEnabled(format, enabled); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Extractor %s is now %s.\n", format, onOff(enabled))
	return nil
}

func parseOnOff(s string) (bool, error) {
	enabled, ok := domain.ParseFlag(s)
	if !ok {
		return false, fmt.Errorf("invalid value %q: expected on or off", s)
	}
	return enabled, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func optionalNames() string {
	formats := domain.OptionalFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
