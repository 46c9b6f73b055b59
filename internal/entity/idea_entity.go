package entity

import (
	"time"

	"github.com/google/uuid"
)

type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

func (p PriorityLevel) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Idea struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Title      string
	Content    string
	Tags       []string
	Priority   PriorityLevel
	Category   string
	IsFavorite bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}

// CategoryCount is one row of the per-category aggregate.
type CategoryCount struct {
	Category string
	Count    int64
}
