package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminUserResponse struct {
	Id         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	LastActive time.Time `json:"last_active"`
	CreatedAt  time.Time `json:"created_at"`
	IdeaCount  int64     `json:"idea_count"`
}

type UserExportResponse struct {
	User       UserDTO        `json:"user"`
	Ideas      []IdeaResponse `json:"ideas"`
	ExportDate time.Time      `json:"export_date"`
	TotalIdeas int            `json:"total_ideas"`
}

type AdminStatsResponse struct {
	TotalUsers     int64 `json:"total_users"`
	TotalIdeas     int64 `json:"total_ideas"`
	IdeasThisWeek  int64 `json:"ideas_this_week"`
	ActiveThisWeek int64 `json:"active_this_week"`
	FavoritedIdeas int64 `json:"favorited_ideas"`
	CombinedIdeas  int64 `json:"combined_ideas"`
}
