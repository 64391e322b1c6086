package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pilealire/internal/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "pilealire",
		Short:         "Ma Pile à Lire",
		Long:          "Ma Pile à Lire keeps a personal reading list: books to read, being read and read, with ratings and comments.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newResetCommand())
	rootCmd.AddCommand(newStatsCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pilealire: %v\n", err)
		logger.LogMsg(logger.LogError, "Command execution failed: %v", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
