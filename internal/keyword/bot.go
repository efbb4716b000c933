// Package keyword implements the offline Moringa courses bot: a flat
// keyword matcher over a canned response table, with unknown queries
// appended to a CSV error log. It has no dialogue state beyond the last
// bot message.
package keyword

import (
	"regexp"
	"sort"
	"strings"
)

var (
	punctPattern = regexp.MustCompile(`[^a-z0-9\s\-]`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// stopwords never trigger a single-token match on their own.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "about": {}, "tell": {}, "me": {}, "what": {}, "is": {},
	"are": {}, "how": {}, "can": {}, "i": {}, "want": {}, "learn": {},
}

// Normalize lowercases text, drops punctuation except hyphens, and collapses
// whitespace. Hyphens survive so multi-word terms like "pen-test" keep their
// shape.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = punctPattern.ReplaceAllString(text, "")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Matcher resolves free-form questions against the response table.
type Matcher struct {
	responses map[string]string
	// keys sorted longest-first so specific phrases beat their substrings.
	keys []string
	// phrases holds one compiled word-boundary pattern per key.
	phrases map[string]*regexp.Regexp
}

// NewMatcher compiles the phrase patterns for the given table. Passing nil
// uses the built-in Responses table.
func NewMatcher(responses map[string]string) *Matcher {
	if responses == nil {
		responses = Responses
	}

	keys := make([]string, 0, len(responses))
	for key := range responses {
		keys = append(keys, key)
	}
	// Longest first; ties break lexicographically so match order is stable
	// run to run.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	phrases := make(map[string]*regexp.Regexp, len(keys))
	for _, key := range keys {
		// A hyphen in a key matches either a space or a hyphen in input.
		pattern := `\b` + strings.ReplaceAll(key, "-", `[\s\-]`) + `\b`
		phrases[key] = regexp.MustCompile(pattern)
	}

	return &Matcher{responses: responses, keys: keys, phrases: phrases}
}

// Match finds the best response for the input. Strategies in order: exact
// key match, longest phrase appearing on a word boundary, then a single
// significant token. Returns false when nothing matches.
func (m *Matcher) Match(input string) (string, bool) {
	if strings.TrimSpace(input) == "" {
		return "", false
	}

	normalized := Normalize(input)

	if response, ok := m.responses[normalized]; ok {
		return response, true
	}

	for _, key := range m.keys {
		if m.phrases[key].MatchString(normalized) {
			return m.responses[key], true
		}
	}

	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(normalized) {
		if _, skip := stopwords[tok]; !skip {
			tokens[tok] = struct{}{}
		}
	}

	for _, key := range m.keys {
		if strings.Contains(key, " ") {
			continue // token fallback applies to single-word keys only
		}
		if _, ok := tokens[key]; ok {
			return m.responses[key], true
		}
	}

	return "", false
}
