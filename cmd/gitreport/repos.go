package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Manage configured repositories",
}

var reposListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured repositories",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := store.Repos()
		if len(entries) == 0 {
			fmt.Println("No repositories configured. Run 'gitreport scan <dir> --add' to discover some.")
			return nil
		}
		for _, entry := range entries {
			state := "enabled"
			if !entry.Enabled {
				state = "disabled"
			}
			fmt.Printf("%s  %-24s %-8s %s\n", entry.ID, entry.Name, state, entry.Path)
		}
		return nil
	},
}

var reposAddCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "Add a repository",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		authorName, _ := cmd.Flags().GetString("author")
		authorEmail, _ := cmd.Flags().GetString("email")
		id := store.AddRepo(args[0], args[1], authorName, authorEmail, true)
		if err := store.Save(); err != nil {
			return err
		}
		fmt.Printf("Added repository %s (%s)\n", args[0], id)
		return nil
	},
}

var reposToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.ToggleRepo(args[0]) {
			return fmt.Errorf("no repository with id %s", args[0])
		}
		if err := store.Save(); err != nil {
			return err
		}
		entry, _ := store.RepoByID(args[0])
		state := "disabled"
		if entry.Enabled {
			state = "enabled"
		}
		fmt.Printf("Repository %s is now %s\n", entry.Name, state)
		return nil
	},
}

var reposRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeleteRepo(args[0]) {
			return fmt.Errorf("no repository with id %s", args[0])
		}
		if err := store.Save(); err != nil {
			return err
		}
		fmt.Println("Repository removed")
		return nil
	},
}

func init() {
	reposAddCmd.Flags().String("author", "", "filter commits by this author name")
	reposAddCmd.Flags().String("email", "", "filter commits by this author email")

	reposCmd.AddCommand(reposListCmd, reposAddCmd, reposToggleCmd, reposRemoveCmd)
	rootCmd.AddCommand(reposCmd)
}
