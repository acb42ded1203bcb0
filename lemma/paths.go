package lemma

import "path/filepath"

// RunFiles are the three CoNLL-U files a prediction run touches. EvalFile
// and GoldFile are expected to pre-exist; OutputFile is written by the
// lemmatizer. None of them are created or checked here.
type RunFiles struct {
	EvalFile   string
	OutputFile string
	GoldFile   string
}

// DevFiles derives the dev-split file paths for a shorthand under dataDir.
func DevFiles(dataDir, shorthand string) RunFiles {
	return RunFiles{
		EvalFile:   filepath.Join(dataDir, shorthand+".dev.in.conllu"),
		OutputFile: filepath.Join(dataDir, shorthand+".dev.pred.conllu"),
		GoldFile:   filepath.Join(dataDir, shorthand+".dev.gold.conllu"),
	}
}
