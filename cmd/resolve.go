package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/lexenlem/lemrun/lemma"
	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve [treebank]",
	Short: "Print the shorthand and language code for a treebank",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resolver, err := newResolver()
		if err != nil {
			fmt.Printf("Error setting up resolver: %v\n", err)
			os.Exit(1)
		}

		shorthand, err := resolver.Resolve(context.Background(), lemma.CorpusFamilyUD, args[0])
		if err != nil {
			fmt.Printf("Error resolving treebank: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Shorthand: %s\n", shorthand)
		fmt.Printf("Language: %s\n", lemma.LangCode(shorthand))
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolverPath, "resolver", "", "External resolver command overriding the built-in table")
	resolveCmd.Flags().StringVar(&treebanksPath, "treebanks", "", "YAML file extending the built-in language code table")
}
