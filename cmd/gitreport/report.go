package main

import (
	"fmt"

	"github.com/codetrail/gitreport/internal/ai"
	"github.com/codetrail/gitreport/internal/config"
	"github.com/codetrail/gitreport/internal/report"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an AI status report from the collected commits",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := collectCommits(cmd)
		if err != nil {
			return err
		}

		summary := report.FormatCommits(result.Commits, !logKeepNoise)

		adapter, err := newAdapter()
		if err != nil {
			return err
		}

		text, err := adapter.GenerateReport(cmd.Context(), summary)
		if err != nil {
			return err
		}

		fmt.Println(text)
		printFailures(result)

		if usage := adapter.TokenUsage(); !usage.IsZero() {
			fmt.Printf("\nTokens: %d total (%d prompt, %d completion)\n",
				usage.Total(), usage.PromptTokens, usage.CompletionTokens)
		}
		return nil
	},
}

func newAdapter() (ai.Adapter, error) {
	cfg, err := config.AIFromStore(store, config.NewKeyringManager(logger))
	if err != nil {
		return nil, err
	}
	return ai.New(cfg, logger)
}

func init() {
	reportCmd.Flags().StringVar(&logSince, "since", "", "include commits on or after this date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&logUntil, "until", "", "include commits on or before this date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&logAuthor, "author", "", "filter by exact author name")
	reportCmd.Flags().StringVar(&logEmail, "email", "", "filter by exact author email")
	reportCmd.Flags().BoolVar(&logKeepNoise, "keep-noise", false, "keep merge/sync/wip noise commits in the summary")
	reportCmd.Flags().IntVar(&collectWorkers, "workers", 4, "concurrent repository extractions")
	rootCmd.AddCommand(reportCmd)
}
