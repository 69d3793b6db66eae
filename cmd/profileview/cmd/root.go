package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profileview",
	Short: "Candidate profile viewer",
	Long: `profileview serves a read-only view of the signed-in candidate's profile.

Available commands:
  serve           Run the web application
  show            Fetch a profile and print it as text
  stub-backend    Run a development stand-in for the profile backend
  stub-token      Print a development token accepted by the stub backend

Use "profileview [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
