package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// DefaultPatterns covers HTTP-scheme URLs and bare "www" hosts, the two
// link shapes the policy flags.
var DefaultPatterns = []string{"http", "www"}

// LinkGuard detects link-like substrings in raw message text using an
// Aho-Corasick automaton, so the pattern list is configuration, not code.
// Matching is case-insensitive over the full text before prefix stripping.
type LinkGuard struct {
	matcher *goahocorasick.Machine
}

func NewLinkGuard(patterns []string) (*LinkGuard, error) {
	terms := make([][]rune, len(patterns))
	for i, p := range patterns {
		terms[i] = normalizeRunes([]rune(p))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(terms); err != nil {
		return nil, err
	}
	return &LinkGuard{matcher: m}, nil
}

// Flags reports whether the text contains any guarded pattern. It stops at
// the first hit; the policy sends a single warning regardless of how many
// links a message carries.
func (g *LinkGuard) Flags(text string) bool {
	hits := g.matcher.MultiPatternSearch(normalizeRunes([]rune(text)), true)
	return len(hits) > 0
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		out = append(out, unicode.ToLower(r))
	}
	return out
}

// Warning is the single fixed notice posted to the chat. There is no
// automatic kick and no message deletion; escalation stays with the humans.
const Warning = "⚠️ **SECURITY BREACH**. Unauthorized link transmission detected. " +
	"Remove external references or administrative action will follow."
