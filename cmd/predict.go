package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/lexenlem/lemrun/lemma"
	"github.com/spf13/cobra"
)

var (
	pythonBin     string
	resolverPath  string
	treebanksPath string
)

// predictCmd represents the predict command
var predictCmd = &cobra.Command{
	Use:   "predict [treebank] [extra args...]",
	Short: "Run the lemmatizer in predict mode for a treebank",
	Long: `Run the lemmatizer in predict mode for a treebank. Everything after
the treebank identifier is forwarded unchanged to the lemmatizer, so model
flags can be appended directly:

  lemrun predict UD_English-EWT --max_epochs 5 --seed 42`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := lemma.LoadConfig(envFile)
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if pythonBin != "" {
			cfg.Python = pythonBin
		}

		resolver, err := newResolver()
		if err != nil {
			fmt.Printf("Error setting up resolver: %v\n", err)
			os.Exit(1)
		}

		orch := &lemma.Orchestrator{
			Config:   cfg,
			Resolver: resolver,
			Runner:   lemma.ExecRunner{},
		}
		code, err := orch.Predict(context.Background(), args[0], args[1:])
		if err != nil {
			fmt.Printf("Error running lemmatizer: %v\n", err)
			os.Exit(1)
		}
		os.Exit(code)
	},
}

func newResolver() (lemma.Resolver, error) {
	if resolverPath != "" {
		return &lemma.CommandResolver{Path: resolverPath}, nil
	}
	return lemma.NewTableResolver(treebanksPath)
}

func init() {
	rootCmd.AddCommand(predictCmd)

	// Flags stop being parsed after the treebank so lemmatizer flags pass
	// through without a -- separator.
	predictCmd.Flags().SetInterspersed(false)
	predictCmd.Flags().StringVar(&pythonBin, "python", "", "Python interpreter used to launch the lemmatizer")
	predictCmd.Flags().StringVar(&resolverPath, "resolver", "", "External resolver command overriding the built-in table")
	predictCmd.Flags().StringVar(&treebanksPath, "treebanks", "", "YAML file extending the built-in language code table")
}
