package smart

import (
	"reflect"
	"testing"
)

func TestSuggestTags(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		existing []string
		want     []string
	}{
		{
			name:    "empty content",
			content: "",
			want:    []string{},
		},
		{
			name:    "only short words",
			content: "a big cat ran far",
			want:    []string{},
		},
		{
			name:    "frequency wins over position",
			content: "technology technology innovation platform",
			want:    []string{"technology", "innovation", "platform"},
		},
		{
			name:    "ties broken by first occurrence",
			content: "solar panels charging stations network",
			want:    []string{"solar", "panels", "charging"},
		},
		{
			name:     "existing tags are skipped",
			content:  "garden compost garden compost worms",
			existing: []string{"garden"},
			want:     []string{"compost", "worms"},
		},
		{
			name:    "stoplist words never suggested",
			content: "maybe should robotics robotics drones",
			want:    []string{"robotics", "drones"},
		},
		{
			name:    "case folded before counting",
			content: "Robotics ROBOTICS robotics drones",
			want:    []string{"robotics", "drones"},
		},
		{
			name:    "short words measured in runes not bytes",
			content: "地球温 地球温 地球温 太陽光発電 太陽光発電",
			want:    []string{"太陽光発電"},
		},
		{
			name:    "at most three results",
			content: "alpha beta gamma delta epsilon alpha beta gamma delta epsilon",
			want:    []string{"alpha", "beta", "gamma"},
		},
		{
			name:     "filter applies after top five cut",
			content:  "first second third fourth fifth sixth",
			existing: []string{"first", "second", "third"},
			// "sixth" is outside the top-5 pool, so only two survive.
			want: []string{"fourth", "fifth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestTags(tt.content, tt.existing)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestTags(%q, %v) = %v, want %v", tt.content, tt.existing, got, tt.want)
			}
		})
	}
}

func TestSuggestTagsNeverReturnsExistingOrStoplist(t *testing.T) {
	content := "idea platform platform maybe should growth growth growth"
	existing := []string{"growth"}

	got := SuggestTags(content, existing)

	if len(got) > 3 {
		t.Fatalf("got %d suggestions, want at most 3", len(got))
	}
	for _, tag := range got {
		if _, ok := stoplist[tag]; ok {
			t.Errorf("stoplist word %q suggested", tag)
		}
		for _, ex := range existing {
			if tag == ex {
				t.Errorf("existing tag %q suggested", tag)
			}
		}
	}
}
