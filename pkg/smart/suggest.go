package smart

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// SuggestionConfidence is a placeholder value, not a computed metric.
// It is returned verbatim until a real scoring model exists.
const SuggestionConfidence = 0.7

// maxSuggestions caps the returned tag list.
const maxSuggestions = 3

// candidatePool is how many top-frequency words are considered before filtering.
const candidatePool = 5

// stoplist holds filler words that make poor tags.
var stoplist = map[string]struct{}{
	"idea":   {},
	"think":  {},
	"maybe":  {},
	"could":  {},
	"would":  {},
	"should": {},
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// SuggestTags proposes up to 3 tags drawn from the most frequent words in
// content. Words of length <= 3, words already tagged, and stoplist words are
// never suggested. Ordering is deterministic: frequency descending, ties broken
// by first occurrence in the text.
func SuggestTags(content string, existingTags []string) []string {
	words := wordPattern.FindAllString(strings.ToLower(content), -1)

	counts := make(map[string]int)
	candidates := make([]string, 0) // first-occurrence order
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 3 {
			continue
		}
		if _, seen := counts[w]; !seen {
			candidates = append(candidates, w)
		}
		counts[w]++
	}

	// Stable sort keeps first-occurrence order among equal frequencies.
	sort.SliceStable(candidates, func(i, j int) bool {
		return counts[candidates[i]] > counts[candidates[j]]
	})

	if len(candidates) > candidatePool {
		candidates = candidates[:candidatePool]
	}

	existing := make(map[string]struct{}, len(existingTags))
	for _, t := range existingTags {
		existing[t] = struct{}{}
	}

	suggestions := make([]string, 0, maxSuggestions)
	for _, w := range candidates {
		if _, ok := existing[w]; ok {
			continue
		}
		if _, ok := stoplist[w]; ok {
			continue
		}
		suggestions = append(suggestions, w)
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	return suggestions
}
