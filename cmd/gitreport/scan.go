package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/codetrail/gitreport/internal/scanner"
	"github.com/spf13/cobra"
)

var (
	scanMaxDepth int
	scanAdd      bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "Discover git repositories under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := scanner.New(logger)

		// Ctrl-C stops the scan cooperatively; partial results still print.
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)
		go func() {
			<-interrupt
			s.Stop()
		}()

		repos, err := s.Scan(args[0], scanMaxDepth)
		if err != nil {
			return err
		}

		found, visited := s.Progress()
		fmt.Printf("Found %d repositories (%d directories visited)\n\n", found, visited)
		for _, repo := range repos {
			identity := ""
			if repo.AuthorName != "" || repo.AuthorEmail != "" {
				identity = fmt.Sprintf("  (%s <%s>)", repo.AuthorName, repo.AuthorEmail)
			}
			fmt.Printf("  %-24s %s%s\n", repo.Name, repo.Path, identity)
		}

		if !scanAdd {
			return nil
		}

		configured := make(map[string]bool)
		for _, entry := range store.Repos() {
			configured[entry.Path] = true
		}

		added := 0
		for _, repo := range repos {
			if configured[repo.Path] {
				continue
			}
			store.AddRepo(repo.Name, repo.Path, repo.AuthorName, repo.AuthorEmail, true)
			added++
		}
		if err := store.Save(); err != nil {
			return err
		}
		fmt.Printf("\nAdded %d new repositories to %s\n", added, store.Path())
		return nil
	},
}

func init() {
	scanCmd.Flags().IntVar(&scanMaxDepth, "max-depth", 3, "maximum directory depth to scan")
	scanCmd.Flags().BoolVar(&scanAdd, "add", false, "append newly found repositories to the config")
	rootCmd.AddCommand(scanCmd)
}
