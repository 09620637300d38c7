package main

import (
	"fmt"

	"github.com/codetrail/gitreport/internal/git"
	"github.com/spf13/cobra"
)

var authorsCmd = &cobra.Command{
	Use:   "authors <path>",
	Short: "List the unique commit authors of a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := git.NewExtractor(args[0], "", logger)
		if err != nil {
			return err
		}

		authors := extractor.Authors(cmd.Context())
		if len(authors) == 0 {
			fmt.Println("No authors found")
			return nil
		}
		for _, author := range authors {
			fmt.Printf("%s <%s>\n", author.Name, author.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authorsCmd)
}
