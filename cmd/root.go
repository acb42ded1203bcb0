package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	envFile  string
	dataDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "lemrun",
	Short: "Run orchestrator for the lexenlem neural lemmatizer",
	Long: `Lemrun wraps invocation of the lexenlem lemmatizer. It resolves a
treebank identifier to its shorthand code, derives the CoNLL-U file paths
for a run, and launches the lemmatizer with the right flags.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(newLogger(logLevel, os.Stderr))
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Env file to load before reading configuration")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the LEMMA_DATA_DIR data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
