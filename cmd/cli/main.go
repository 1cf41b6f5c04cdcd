package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host    string
	dryRun  bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ledger-cli",
	Short: "A CLI to interact with the tennis-ledger server",
	Long: `A command-line interface for making requests to the various endpoints
of the tennis-ledger application.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Ask the server to skip side effects (events, Slack)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Ask the server to log this request at debug level")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
