package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "veldt",
		Short: "Reactive components for Go",
		Long: `Veldt is a reactive-state engine with a component rendering shell.

Declare values that change over time, derive new values from them, and
drive components that re-render whenever their dependencies change.
The CLI hosts a demo component over HTTP/WebSocket and exports static
snapshots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		exportCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("veldt %s (%s)\n", version, commit)
		},
	}
}
