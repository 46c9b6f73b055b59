package dto

type PriorityBreakdown struct {
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

type DashboardStats struct {
	TotalIdeas        int64             `json:"total_ideas"`
	PriorityBreakdown PriorityBreakdown `json:"priority_breakdown"`
	CategoryBreakdown map[string]int64  `json:"category_breakdown"`
	RecentActivity    int64             `json:"recent_activity"`
	FavoriteCount     int64             `json:"favorite_count"`
}
