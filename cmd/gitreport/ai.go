package main

import (
	"fmt"

	"github.com/codetrail/gitreport/internal/config"
	"github.com/spf13/cobra"
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Manage and test the AI provider",
}

var aiTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to the configured AI provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, err := newAdapter()
		if err != nil {
			return err
		}

		ok, message := adapter.TestConnection(cmd.Context())
		fmt.Println(message)
		if !ok {
			return fmt.Errorf("connection test failed")
		}
		return nil
	},
}

var aiSetKeyCmd = &cobra.Command{
	Use:   "set-key <provider> <api-key>",
	Short: "Store a provider API key in the OS keychain",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := args[0]
		if !config.IsSupportedProvider(provider) {
			return fmt.Errorf("unsupported provider %q", provider)
		}

		keys := config.NewKeyringManager(logger)
		if !keys.IsAvailable() {
			return fmt.Errorf("OS keychain not available on this system")
		}
		if err := keys.SaveAPIKey(provider, args[1]); err != nil {
			return err
		}
		fmt.Printf("API key for %s saved to OS keychain\n", provider)
		return nil
	},
}

var aiProviderCmd = &cobra.Command{
	Use:   "provider [id]",
	Short: "Show or set the active AI provider",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(store.GetString("ai.provider"))
			return nil
		}
		if !config.IsSupportedProvider(args[0]) {
			return fmt.Errorf("unsupported provider %q", args[0])
		}
		store.Set("ai.provider", args[0])
		if err := store.Save(); err != nil {
			return err
		}
		fmt.Printf("Active provider set to %s\n", args[0])
		return nil
	},
}

func init() {
	aiCmd.AddCommand(aiTestCmd, aiSetKeyCmd, aiProviderCmd)
	rootCmd.AddCommand(aiCmd)
}
