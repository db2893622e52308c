package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var timeout time.Duration

var rootCmd = &cobra.Command{
	Use:           "animalloo",
	Short:         "Animalloo knowledge backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for one-shot query commands")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(queryCmd)
	queryCmd.AddCommand(querySearchCmd, queryFacilityCmd, queryContextCmd, queryStatsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
