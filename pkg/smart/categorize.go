package smart

import "strings"

const (
	// CategoryGeneral is assigned when no taxonomy keyword matches.
	CategoryGeneral = "general"

	// CategoryFusion is forced onto ideas produced by combining two ideas.
	CategoryFusion = "fusion"
)

// TaxonomyEntry binds a category label to its keyword list.
type TaxonomyEntry struct {
	Label    string
	Keywords []string
}

// Taxonomy is the fixed category set. Declaration order matters: when two
// categories share the maximum keyword score, the one declared first wins.
var Taxonomy = []TaxonomyEntry{
	{"invention", []string{"invent", "create", "build", "make", "device", "tool", "machine", "technology"}},
	{"story", []string{"character", "plot", "story", "write", "book", "novel", "chapter", "scene"}},
	{"product", []string{"sell", "market", "business", "customer", "profit", "service", "app", "platform"}},
	{"research", []string{"study", "analyze", "investigate", "research", "experiment", "test", "data"}},
	{"creative", []string{"art", "design", "color", "creative", "artistic", "visual", "music", "paint"}},
	{"personal", []string{"life", "goal", "habit", "improve", "learn", "grow", "change", "development"}},
}

// Categorize assigns a taxonomy label by keyword overlap: each keyword that
// occurs as a substring of the lowercased title+content scores one point for
// its category, at most once per keyword. Returns CategoryGeneral when nothing
// matches. Total and side-effect free.
func Categorize(title, content string) string {
	combined := strings.ToLower(title + " " + content)

	best := CategoryGeneral
	bestScore := 0
	for _, entry := range Taxonomy {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(combined, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry.Label
		}
	}

	return best
}
