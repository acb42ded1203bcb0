package lemma

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"gopkg.in/yaml.v3"
)

// CorpusFamilyUD is the corpus family tag passed to resolvers. Universal
// Dependencies is the only family the built-in table knows about.
const CorpusFamilyUD = "ud"

// Resolver maps a treebank identifier such as "UD_English-EWT" to its
// canonical shorthand such as "en_ewt".
type Resolver interface {
	Resolve(ctx context.Context, family, treebank string) (string, error)
}

// LangCode returns the language code embedded in a shorthand: the prefix up
// to the first underscore, or the whole shorthand when no underscore exists.
func LangCode(shorthand string) string {
	if i := strings.IndexByte(shorthand, '_'); i >= 0 {
		return shorthand[:i]
	}
	return shorthand
}

// langCodes maps UD language names (as they appear in treebank identifiers)
// to their language codes.
var langCodes = map[string]string{
	"Afrikaans":           "af",
	"Ancient_Greek":       "grc",
	"Arabic":              "ar",
	"Armenian":            "hy",
	"Basque":              "eu",
	"Belarusian":          "be",
	"Bulgarian":           "bg",
	"Buryat":              "bxr",
	"Catalan":             "ca",
	"Chinese":             "zh",
	"Croatian":            "hr",
	"Czech":               "cs",
	"Danish":              "da",
	"Dutch":               "nl",
	"English":             "en",
	"Estonian":            "et",
	"Finnish":             "fi",
	"French":              "fr",
	"Galician":            "gl",
	"German":              "de",
	"Gothic":              "got",
	"Greek":               "el",
	"Hebrew":              "he",
	"Hindi":               "hi",
	"Hungarian":           "hu",
	"Indonesian":          "id",
	"Irish":               "ga",
	"Italian":             "it",
	"Japanese":            "ja",
	"Kazakh":              "kk",
	"Korean":              "ko",
	"Kurmanji":            "kmr",
	"Latin":               "la",
	"Latvian":             "lv",
	"Naija":               "pcm",
	"North_Sami":          "sme",
	"Norwegian":           "no",
	"Old_Church_Slavonic": "cu",
	"Old_French":          "fro",
	"Persian":             "fa",
	"Polish":              "pl",
	"Portuguese":          "pt",
	"Romanian":            "ro",
	"Russian":             "ru",
	"Serbian":             "sr",
	"Slovak":              "sk",
	"Slovenian":           "sl",
	"Spanish":             "es",
	"Swedish":             "sv",
	"Turkish":             "tr",
	"Ukrainian":           "uk",
	"Upper_Sorbian":       "hsb",
	"Urdu":                "ur",
	"Uyghur":              "ug",
	"Vietnamese":          "vi",
}

// TableResolver resolves treebank identifiers from a language-code table,
// without shelling out. The zero value uses the built-in UD table.
type TableResolver struct {
	overrides map[string]string
}

// NewTableResolver returns a resolver backed by the built-in table. If
// tablePath is non-empty, it names a YAML file mapping language names to
// language codes; its entries extend and override the built-in ones.
func NewTableResolver(tablePath string) (*TableResolver, error) {
	r := &TableResolver{}
	if tablePath == "" {
		return r, nil
	}

	raw, err := os.ReadFile(tablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read treebank table: %w", err)
	}
	if err := yaml.Unmarshal(raw, &r.overrides); err != nil {
		return nil, fmt.Errorf("failed to parse treebank table %s: %w", tablePath, err)
	}
	return r, nil
}

func (r *TableResolver) Resolve(ctx context.Context, family, treebank string) (string, error) {
	if family != CorpusFamilyUD {
		return "", fmt.Errorf("unknown corpus family %q", family)
	}

	name, ok := strings.CutPrefix(treebank, "UD_")
	if !ok {
		return "", fmt.Errorf("treebank %q does not look like a UD treebank identifier", treebank)
	}
	language, corpus, ok := strings.Cut(name, "-")
	if !ok {
		return "", fmt.Errorf("treebank %q is missing a corpus part", treebank)
	}

	code, ok := r.overrides[language]
	if !ok {
		code, ok = langCodes[language]
	}
	if !ok {
		return "", fmt.Errorf("no language code known for %q", language)
	}
	return code + "_" + strings.ToLower(corpus), nil
}

// CommandResolver shells out to an external resolver, passing the corpus
// family and the treebank identifier as arguments and capturing the
// shorthand from its standard output.
type CommandResolver struct {
	// Path is the resolver executable.
	Path string
}

func (r *CommandResolver) Resolve(ctx context.Context, family, treebank string) (string, error) {
	out, err := exec.CommandContext(ctx, r.Path, family, treebank).Output()
	if err != nil {
		return "", fmt.Errorf("resolver %s failed: %w", r.Path, err)
	}
	return strings.TrimSpace(string(out)), nil
}
