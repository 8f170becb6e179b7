package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs",
	Long: `List recent runs, newest first, from the history database in
~/.tecy/data/history.db.

Recording can be switched off with 'history.enabled = false' in
~/.tecy/config.toml.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the details of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of runs to list")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("getting limit flag: %w", err)
	}

	runs, err := historyService.Recent(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	p := newPrinter(cmd.OutOrStdout())
	for i := range runs {
		run := &runs[i]
		cmd.Printf("%s  %s  %s  %s\n",
			shortID(run.ID),
			run.StartedAt.Local().Format(time.DateTime),
			runStatus(p, run),
			runSummary(run),
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	run, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("run %s not found", args[0])
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	p := newPrinter(cmd.OutOrStdout())
	cmd.Println(p.title("Run " + run.ID))
	cmd.Printf("  Status:     %s\n", runStatus(p, run))
	cmd.Printf("  Started:    %s\n", run.StartedAt.Local().Format(time.DateTime))
	cmd.Printf("  Duration:   %s\n", run.Duration.Round(time.Millisecond))
	cmd.Printf("  Input:      %s\n", run.InputPath)
	cmd.Printf("  Format:     %s\n", run.Format)
	if run.Extractor != "" {
		cmd.Printf("  Extractor:  %s\n", run.Extractor)
	}
	if run.Encoding != "" {
		cmd.Printf("  Encoding:   %s\n", run.Encoding)
	}
	if run.Succeeded() {
		cmd.Printf("  Output:     %s\n", run.OutputPath)
		cmd.Printf("  Lines:      %d kept of %d\n", run.CleanedLines, run.RawLines)
	} else {
		cmd.Printf("  Error:      %s\n", run.Error)
	}
	for _, a := range run.Advisories {
		cmd.Printf("  Notice:     %s\n", a)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runStatus(p *printer, run *domain.Run) string {
	if run.Succeeded() {
		return p.success(string(run.Status))
	}
	return p.failure(string(run.Status))
}

func runSummary(run *domain.Run) string {
	if run.Succeeded() {
		return fmt.Sprintf("%s -> %s (%d lines)", run.InputPath, run.OutputPath, run.CleanedLines)
	}
	return fmt.Sprintf("%s: %s", run.InputPath, run.Error)
}
