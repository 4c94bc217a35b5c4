package ask

import "github.com/sahilm/fuzzy"

// FuzzyScorer ranks options with sahilm/fuzzy: matched runes may be spread
// over the option, and adjacent or word-start matches score higher.
func FuzzyScorer[T any]() Scorer[T] {
	return func(input string, _ T, str string, _ int) (int, bool) {
		matches := fuzzy.Find(input, []string{str})
		if len(matches) == 0 {
			return 0, false
		}
		return matches[0].Score, true
	}
}

// NewFuzzySuggester returns a suggester proposing the candidates that fuzzy
// match the input, best match first. An empty input suggests nothing.
//
// Example:
//
//	text := ask.NewText("Command:")
//	text.Suggester = ask.NewFuzzySuggester([]string{
//		"git status", "git commit", "docker run", "kubectl get",
//	})
func NewFuzzySuggester(candidates []string) Suggester {
	return func(in string) ([]string, error) {
		if in == "" {
			return nil, nil
		}
		matches := fuzzy.Find(in, candidates)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m.Str)
		}
		return out, nil
	}
}
