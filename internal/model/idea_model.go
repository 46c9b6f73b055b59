package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Idea struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title      string         `gorm:"type:varchar(255);not null"`
	Content    string         `gorm:"type:text"`
	Tags       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Priority   string         `gorm:"type:varchar(20);not null;default:'medium';index"`
	Category   string         `gorm:"type:varchar(50);index"`
	IsFavorite bool           `gorm:"default:false"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Idea) TableName() string {
	return "ideas"
}
