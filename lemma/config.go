package lemma

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvDataDir is the environment variable naming the directory that holds
// the per-treebank CoNLL-U files.
const EnvDataDir = "LEMMA_DATA_DIR"

// Config holds the run-wide settings. It is loaded once at startup and
// passed by value; nothing reads the environment after LoadConfig returns.
type Config struct {
	// DataDir is where <shorthand>.dev.{in,pred,gold}.conllu live.
	DataDir string
	// Python is the interpreter used to launch the lemmatizer module.
	Python string
}

// LoadConfig reads configuration from the process environment. If envFile
// is non-empty it is loaded first (variables already set in the environment
// win, matching godotenv semantics).
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := Config{
		DataDir: os.Getenv(EnvDataDir),
		Python:  "python",
	}
	return cfg, nil
}
