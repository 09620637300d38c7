package main

import (
	"fmt"
	"time"

	"github.com/codetrail/gitreport/internal/collect"
	"github.com/codetrail/gitreport/internal/git"
	"github.com/codetrail/gitreport/internal/report"
	"github.com/spf13/cobra"
)

var (
	logSince       string
	logUntil       string
	logAuthor      string
	logEmail       string
	logKeepNoise   bool
	collectWorkers int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Collect and summarize commits from the enabled repositories",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := collectCommits(cmd)
		if err != nil {
			return err
		}

		fmt.Println(report.FormatCommits(result.Commits, !logKeepNoise))
		printFailures(result)
		return nil
	},
}

// collectCommits runs the scanner-independent half of the pipeline: one
// extraction per enabled repository with per-repository failure isolation.
func collectCommits(cmd *cobra.Command) (collect.Result, error) {
	entries := store.EnabledRepos()
	if len(entries) == 0 {
		return collect.Result{}, fmt.Errorf("no enabled repositories configured")
	}

	filter := git.CommitFilter{AuthorName: logAuthor, AuthorEmail: logEmail}

	if logSince != "" {
		t, err := time.ParseInLocation("2006-01-02", logSince, time.Local)
		if err != nil {
			return collect.Result{}, fmt.Errorf("invalid --since date %q (want YYYY-MM-DD)", logSince)
		}
		filter.Since = t
	}
	if logUntil != "" {
		t, err := time.ParseInLocation("2006-01-02", logUntil, time.Local)
		if err != nil {
			return collect.Result{}, fmt.Errorf("invalid --until date %q (want YYYY-MM-DD)", logUntil)
		}
		// Make the bound inclusive of the whole day.
		filter.Until = t.Add(24*time.Hour - time.Second)
	}

	collector := collect.New(logger, collectWorkers)
	return collector.Collect(cmd.Context(), entries, filter), nil
}

func printFailures(result collect.Result) {
	if len(result.Failed) == 0 {
		return
	}
	fmt.Printf("\nFailed repositories (%d):\n", len(result.Failed))
	for _, failed := range result.Failed {
		fmt.Printf("  %s (%s): %v\n", failed.Name, failed.Path, failed.Err)
	}
}

func init() {
	logCmd.Flags().StringVar(&logSince, "since", "", "include commits on or after this date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "include commits on or before this date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logAuthor, "author", "", "filter by exact author name")
	logCmd.Flags().StringVar(&logEmail, "email", "", "filter by exact author email")
	logCmd.Flags().BoolVar(&logKeepNoise, "keep-noise", false, "keep merge/sync/wip noise commits in the summary")
	logCmd.Flags().IntVar(&collectWorkers, "workers", 4, "concurrent repository extractions")
	rootCmd.AddCommand(logCmd)
}
