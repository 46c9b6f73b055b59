package mapper

import (
	"encoding/json"
	"time"

	"mindvault-be/internal/entity"
	"mindvault-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type IdeaMapper struct{}

func NewIdeaMapper() *IdeaMapper {
	return &IdeaMapper{}
}

func (m *IdeaMapper) ToEntity(i *model.Idea) *entity.Idea {
	if i == nil {
		return nil
	}

	var deletedAt *time.Time
	if i.DeletedAt.Valid {
		t := i.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	tags := []string{}
	if len(i.Tags) > 0 {
		// Malformed rows degrade to no tags rather than failing the read.
		_ = json.Unmarshal(i.Tags, &tags)
	}

	return &entity.Idea{
		Id:         i.Id,
		UserId:     i.UserId,
		Title:      i.Title,
		Content:    i.Content,
		Tags:       tags,
		Priority:   entity.PriorityLevel(i.Priority),
		Category:   i.Category,
		IsFavorite: i.IsFavorite,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  i.DeletedAt.Valid,
	}
}

func (m *IdeaMapper) ToModel(i *entity.Idea) *model.Idea {
	if i == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if i.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *i.DeletedAt, Valid: true}
	} else if i.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	tags := i.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJson, _ := json.Marshal(tags)

	return &model.Idea{
		Id:         i.Id,
		UserId:     i.UserId,
		Title:      i.Title,
		Content:    i.Content,
		Tags:       datatypes.JSON(tagsJson),
		Priority:   string(i.Priority),
		Category:   i.Category,
		IsFavorite: i.IsFavorite,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *IdeaMapper) ToEntities(ideas []*model.Idea) []*entity.Idea {
	entities := make([]*entity.Idea, len(ideas))
	for i, it := range ideas {
		entities[i] = m.ToEntity(it)
	}
	return entities
}
