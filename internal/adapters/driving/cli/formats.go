package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List recognised formats and extractor availability",
	Long: `List the formats tecy recognises, in the order the dispatcher tries
them, with the extensions routed to each one.

Disabled extractors fall back to plain-text decoding. Use
'tecy settings extractor <name> on' to enable one again.`,
	Args: cobra.NoArgs,
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	caps := settingsService.Capabilities()
	p := newPrinter(cmd.OutOrStdout())

	cmd.Println(p.title("Formats"))
	for _, info := range domain.SupportedFormats() {
		exts := strings.Join(info.Extensions, " ")
		if len(info.Extensions) == 0 {
			exts = "(any other extension)"
		}
		cmd.Printf("  %-12s %-12s %-36s %s\n", info.Format, info.Name, exts, formatStatus(p, caps, info))
	}
	return nil
}

func formatStatus(p *printer, caps domain.Capabilities, info domain.FormatInfo) string {
	switch {
	case !info.Optional:
		return p.muted("always")
	case caps.Enabled(info.Format):
		return p.success("enabled")
	default:
		return p.warning("disabled")
	}
}
