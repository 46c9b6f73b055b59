package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateIdeaRequest struct {
	Title    string   `json:"title" validate:"required,max=255"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags" validate:"dive,lowercase"`
	Priority string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category string   `json:"category" validate:"omitempty,max=50"`
}

// UpdateIdeaRequest carries partial updates: nil fields are left untouched.
type UpdateIdeaRequest struct {
	Id         uuid.UUID
	Title      *string   `json:"title" validate:"omitempty,max=255"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags" validate:"omitempty,dive,lowercase"`
	Priority   *string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	IsFavorite *bool     `json:"is_favorite"`
	Category   *string   `json:"category" validate:"omitempty,max=50"`
}

type CombineIdeasRequest struct {
	Idea1Id  uuid.UUID `json:"idea1_id" validate:"required"`
	Idea2Id  uuid.UUID `json:"idea2_id" validate:"required"`
	NewTitle string    `json:"new_title" validate:"omitempty,max=255"`
}

// ListIdeasQuery holds the supported list filters.
type ListIdeasQuery struct {
	Tag      string
	Category string
	Priority string
	ViewMode string
}

type IdeaResponse struct {
	Id         uuid.UUID  `json:"id"`
	UserId     uuid.UUID  `json:"user_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Tags       []string   `json:"tags"`
	Priority   string     `json:"priority"`
	Category   string     `json:"category"`
	IsFavorite bool       `json:"is_favorite"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// SmartSuggestionResponse is transient: computed per request, never stored.
type SmartSuggestionResponse struct {
	Type        string   `json:"type"`
	Suggestions []string `json:"suggestions"`
	Confidence  float64  `json:"confidence"`
}
