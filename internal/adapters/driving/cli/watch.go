package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Clean a file again every time it changes",
	Long: `Clean the file once, then again whenever it is written to.

The watch stops when the file is removed or renamed, or on Ctrl+C.
Failed runs are reported and the watch carries on.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}
	cmd.SilenceUsage = true

	path := args[0]
	p := newPrinter(cmd.OutOrStdout())
	cmd.Println(p.muted(fmt.Sprintf("Watching %s (Ctrl+C to stop)", path)))

	observe := func(run *domain.Run, err error) {
		if run != nil {
			printAdvisories(cmd, p, run.Advisories)
		}
		if err != nil {
			cmd.Println(p.failure(describeFailure(path, err).Error()))
			return
		}
		printRun(cmd, p, run)
	}

	err := watchService.Watch(cmd.Context(), path, observe)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("input file %s does not exist", path)
	}
	return err
}
