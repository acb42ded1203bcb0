package lemma

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	shorthand string
	err       error

	family   string
	treebank string
}

func (r *fakeResolver) Resolve(ctx context.Context, family, treebank string) (string, error) {
	r.family = family
	r.treebank = treebank
	return r.shorthand, r.err
}

type fakeRunner struct {
	exitCode int
	err      error

	called bool
	name   string
	args   []string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	r.called = true
	r.name = name
	r.args = args
	return r.exitCode, r.err
}

func newTestOrchestrator(resolver Resolver, runner Runner) *Orchestrator {
	return &Orchestrator{
		Config:   Config{DataDir: "/data/lemma", Python: "python"},
		Resolver: resolver,
		Runner:   runner,
	}
}

func TestOrchestrator_Predict_Invocation(t *testing.T) {
	resolver := &fakeResolver{shorthand: "en_ewt"}
	runner := &fakeRunner{}
	orch := newTestOrchestrator(resolver, runner)

	code, err := orch.Predict(context.Background(), "UD_English-EWT", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	assert.Equal(t, CorpusFamilyUD, resolver.family)
	assert.Equal(t, "UD_English-EWT", resolver.treebank)

	assert.Equal(t, "python", runner.name)
	assert.Equal(t, []string{
		"-m", "lexenlem.models.lemmatizer_cmb",
		"--data_dir", "/data/lemma",
		"--eval_file", "/data/lemma/en_ewt.dev.in.conllu",
		"--output_file", "/data/lemma/en_ewt.dev.pred.conllu",
		"--gold_file", "/data/lemma/en_ewt.dev.gold.conllu",
		"--lang", "en_ewt",
		"--mode", "predict",
	}, runner.args)
}

func TestOrchestrator_Predict_ExtraArgsForwardedInOrder(t *testing.T) {
	resolver := &fakeResolver{shorthand: "ko_kaist"}
	runner := &fakeRunner{}
	orch := newTestOrchestrator(resolver, runner)

	extra := []string{"--max_epochs", "5", "--seed", "42"}
	_, err := orch.Predict(context.Background(), "UD_Korean-Kaist", extra)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(runner.args), len(extra))
	assert.Equal(t, extra, runner.args[len(runner.args)-len(extra):])
}

func TestOrchestrator_Predict_NoExtraArgs(t *testing.T) {
	resolver := &fakeResolver{shorthand: "ko_kaist"}
	runner := &fakeRunner{}
	orch := newTestOrchestrator(resolver, runner)

	_, err := orch.Predict(context.Background(), "UD_Korean-Kaist", nil)
	require.NoError(t, err)

	assert.Equal(t, "--mode", runner.args[len(runner.args)-2])
	assert.Equal(t, "predict", runner.args[len(runner.args)-1])
}

func TestOrchestrator_Predict_PropagatesExitCode(t *testing.T) {
	for _, code := range []int{0, 1, 2} {
		resolver := &fakeResolver{shorthand: "en_ewt"}
		runner := &fakeRunner{exitCode: code}
		orch := newTestOrchestrator(resolver, runner)

		got, err := orch.Predict(context.Background(), "UD_English-EWT", nil)
		require.NoError(t, err)
		assert.Equal(t, code, got)
	}
}

func TestOrchestrator_Predict_ResolverError(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("boom")}
	runner := &fakeRunner{}
	orch := newTestOrchestrator(resolver, runner)

	_, err := orch.Predict(context.Background(), "UD_English-EWT", nil)
	require.Error(t, err)
	assert.False(t, runner.called, "runner must not be called when resolution fails")
}

func TestOrchestrator_Predict_EmptyShorthand(t *testing.T) {
	resolver := &fakeResolver{shorthand: ""}
	runner := &fakeRunner{}
	orch := newTestOrchestrator(resolver, runner)

	_, err := orch.Predict(context.Background(), "UD_English-EWT", nil)
	require.Error(t, err)
	assert.False(t, runner.called, "runner must not be called on empty shorthand")
}

func TestExecRunner_ExitCodes(t *testing.T) {
	runner := ExecRunner{}

	code, err := runner.Run(context.Background(), "sh", "-c", "exit 0")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = runner.Run(context.Background(), "sh", "-c", "exit 7")
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	runner := ExecRunner{}

	_, err := runner.Run(context.Background(), "definitely-not-a-real-binary")
	require.Error(t, err)
}
