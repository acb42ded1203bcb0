package lemma

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// LemmatizerModule is the Python module invoked for prediction runs.
const LemmatizerModule = "lexenlem.models.lemmatizer_cmb"

// Runner launches an external command and reports its exit code. The
// command inherits the caller's standard streams; nothing is captured or
// transformed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to run %s: %w", name, err)
}

// Orchestrator wires a prediction run together: resolve the treebank,
// derive the run files, hand everything to the lemmatizer.
type Orchestrator struct {
	Config   Config
	Resolver Resolver
	Runner   Runner
}

// Predict resolves treebank and invokes the lemmatizer in predict mode,
// forwarding extraArgs verbatim after the fixed flags. It returns the
// subprocess exit code.
func (o *Orchestrator) Predict(ctx context.Context, treebank string, extraArgs []string) (int, error) {
	shorthand, err := o.Resolver.Resolve(ctx, CorpusFamilyUD, treebank)
	if err != nil {
		return -1, fmt.Errorf("failed to resolve treebank %s: %w", treebank, err)
	}
	if shorthand == "" {
		return -1, fmt.Errorf("resolver returned an empty shorthand for treebank %s", treebank)
	}

	files := DevFiles(o.Config.DataDir, shorthand)
	args := []string{
		"-m", LemmatizerModule,
		"--data_dir", o.Config.DataDir,
		"--eval_file", files.EvalFile,
		"--output_file", files.OutputFile,
		"--gold_file", files.GoldFile,
		"--lang", shorthand,
		"--mode", "predict",
	}
	args = append(args, extraArgs...)

	slog.Info("running lemmatizer", "treebank", treebank, "shorthand", shorthand, "extra_args", extraArgs)
	return o.Runner.Run(ctx, o.Config.Python, args...)
}
