package smart

import (
	"reflect"
	"strings"
	"testing"
)

func TestFuse(t *testing.T) {
	a := FusionInput{
		Title:    "Solar charger",
		Content:  "A portable panel.",
		Tags:     []string{"solar", "hardware"},
		Priority: PriorityLow,
	}
	b := FusionInput{
		Title:    "Bike rental",
		Content:  "Dockless city bikes.",
		Tags:     []string{"hardware", "mobility"},
		Priority: PriorityHigh,
	}

	got := Fuse(a, b, "")

	if got.Title != "Solar charger + Bike rental" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Category != CategoryFusion {
		t.Errorf("Category = %q, want %q", got.Category, CategoryFusion)
	}
	if got.Priority != PriorityHigh {
		t.Errorf("Priority = %q, want %q", got.Priority, PriorityHigh)
	}
	if want := []string{"solar", "hardware", "mobility"}; !reflect.DeepEqual(got.Tags, want) {
		t.Errorf("Tags = %v, want %v", got.Tags, want)
	}

	for _, fragment := range []string{
		"**Fusion of Ideas:**",
		"**Idea 1: Solar charger**\nA portable panel.",
		"**Idea 2: Bike rental**\nDockless city bikes.",
		"**Combined Insight:**",
	} {
		if !strings.Contains(got.Content, fragment) {
			t.Errorf("Content missing %q", fragment)
		}
	}
}

func TestFuseTitleOverride(t *testing.T) {
	got := Fuse(FusionInput{Title: "One"}, FusionInput{Title: "Two"}, "Custom")
	if got.Title != "Custom" {
		t.Errorf("Title = %q, want %q", got.Title, "Custom")
	}
}

func TestFuseForcesFusionCategory(t *testing.T) {
	got := Fuse(
		FusionInput{Title: "A", Priority: PriorityMedium},
		FusionInput{Title: "B", Priority: PriorityMedium},
		"",
	)
	if got.Category != CategoryFusion {
		t.Errorf("Category = %q, want %q", got.Category, CategoryFusion)
	}
}

func TestMaxPriority(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{PriorityLow, PriorityHigh, PriorityHigh},
		{PriorityHigh, PriorityLow, PriorityHigh},
		{PriorityLow, PriorityLow, PriorityLow},
		{PriorityMedium, PriorityLow, PriorityMedium},
		{PriorityMedium, PriorityHigh, PriorityHigh},
		{"", PriorityMedium, PriorityMedium},
		{"", "", PriorityLow},
	}

	for _, tt := range tests {
		if got := MaxPriority(tt.a, tt.b); got != tt.want {
			t.Errorf("MaxPriority(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}
