package smart

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    string
	}{
		{
			name:    "empty input is general",
			title:   "",
			content: "",
			want:    CategoryGeneral,
		},
		{
			name:    "no keyword match is general",
			title:   "untitled",
			content: "random musings without triggers",
			want:    CategoryGeneral,
		},
		{
			name:    "invention keywords dominate",
			title:   "Build a machine",
			content: "invent a new tool",
			want:    "invention",
		},
		{
			name:    "story beats product on score",
			title:   "Write a story",
			content: "character plot scene business",
			want:    "story",
		},
		{
			name:    "declaration order breaks ties",
			title:   "",
			content: "write a novel to sell on the market",
			// story scores 2 (write, novel), product scores 2 (sell, market);
			// story is declared first.
			want: "story",
		},
		{
			name:    "case insensitive matching",
			title:   "RESEARCH PLAN",
			content: "ANALYZE THE DATA",
			want:    "research",
		},
		{
			name:    "substring matches count",
			title:   "",
			content: "developmental lifestyle changes",
			// "development", "life", "change" all match personal as substrings.
			want: "personal",
		},
		{
			name:    "repeated keyword counts once",
			title:   "art art art art",
			content: "study analyze data",
			// creative scores 1 despite repetition, research scores 3.
			want: "research",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.title, tt.content)
			if got != tt.want {
				t.Errorf("Categorize(%q, %q) = %q, want %q", tt.title, tt.content, got, tt.want)
			}
		})
	}
}

func TestCategorizeIsIdempotent(t *testing.T) {
	title, content := "Build a platform", "sell the service to customers"
	first := Categorize(title, content)
	second := Categorize(title, content)
	if first != second {
		t.Errorf("Categorize not idempotent: %q then %q", first, second)
	}
}

func TestTaxonomyOrderIsFixed(t *testing.T) {
	wantOrder := []string{"invention", "story", "product", "research", "creative", "personal"}
	if len(Taxonomy) != len(wantOrder) {
		t.Fatalf("taxonomy has %d entries, want %d", len(Taxonomy), len(wantOrder))
	}
	for i, entry := range Taxonomy {
		if entry.Label != wantOrder[i] {
			t.Errorf("taxonomy[%d] = %q, want %q", i, entry.Label, wantOrder[i])
		}
	}
}
