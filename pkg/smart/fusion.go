package smart

import "fmt"

// Priority levels, ordered low < medium < high.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var priorityRank = map[string]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
}

// FusionInput carries the fields of one source idea that the merge reads.
type FusionInput struct {
	Title    string
	Content  string
	Tags     []string
	Priority string
}

// FusionResult is the merged idea produced by Fuse.
type FusionResult struct {
	Title    string
	Content  string
	Tags     []string
	Priority string
	Category string
}

// Fuse merges two ideas: tags are unioned, priority is the maximum of the two,
// category is always CategoryFusion, and content follows a fixed template
// embedding both titles and bodies. When titleOverride is empty the title
// defaults to "<title1> + <title2>".
func Fuse(a, b FusionInput, titleOverride string) FusionResult {
	title := titleOverride
	if title == "" {
		title = a.Title + " + " + b.Title
	}

	content := fmt.Sprintf(
		"**Fusion of Ideas:**\n\n**Idea 1: %s**\n%s\n\n**Idea 2: %s**\n%s\n\n**Combined Insight:**\nThis fusion combines elements from both ideas to create a new perspective.",
		a.Title, a.Content, b.Title, b.Content,
	)

	return FusionResult{
		Title:    title,
		Content:  content,
		Tags:     unionTags(a.Tags, b.Tags),
		Priority: MaxPriority(a.Priority, b.Priority),
		Category: CategoryFusion,
	}
}

// MaxPriority returns the higher of two priority levels. Unknown levels rank
// lowest.
func MaxPriority(a, b string) string {
	if priorityRank[b] > priorityRank[a] {
		return b
	}
	if _, ok := priorityRank[a]; !ok {
		return PriorityLow
	}
	return a
}

func unionTags(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	union := make([]string, 0, len(a)+len(b))
	for _, t := range a {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			union = append(union, t)
		}
	}
	for _, t := range b {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			union = append(union, t)
		}
	}
	return union
}
