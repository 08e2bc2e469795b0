package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "satchelctl",
	Short: "Satchel inventory server control",
	Long: `satchelctl manages the Satchel inventory server.

Satchel grants each registered user exclusive, authenticated control over
a personal inventory of named items with integer quantities.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
