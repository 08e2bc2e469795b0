package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// tokenKeyCmd represents the token-key command
var tokenKeyCmd = &cobra.Command{
	Use:   "token-key",
	Short: "Manage the token-signing key",
	Long:  `Manage the token-signing key`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'token-key' requires a subcommand generate")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(tokenKeyCmd)
}
