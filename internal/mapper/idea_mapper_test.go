package mapper

import (
	"testing"
	"time"

	"mindvault-be/internal/entity"
	"mindvault-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestIdeaMapperMalformedTags(t *testing.T) {
	m := NewIdeaMapper()

	row := &model.Idea{
		Id:     uuid.New(),
		UserId: uuid.New(),
		Title:  "broken tags",
		Tags:   datatypes.JSON([]byte(`{not json`)),
	}

	e := m.ToEntity(row)
	if e == nil {
		t.Fatal("expected entity, got nil")
	}
	if len(e.Tags) != 0 {
		t.Errorf("malformed tags should map to empty slice, got %v", e.Tags)
	}
}

func TestIdeaMapperSoftDelete(t *testing.T) {
	m := NewIdeaMapper()

	deleted := time.Now()
	row := &model.Idea{
		Id:        uuid.New(),
		UserId:    uuid.New(),
		Title:     "gone",
		DeletedAt: gorm.DeletedAt{Time: deleted, Valid: true},
	}

	e := m.ToEntity(row)
	if !e.IsDeleted {
		t.Error("expected IsDeleted to be true")
	}
	if e.DeletedAt == nil || !e.DeletedAt.Equal(deleted) {
		t.Errorf("DeletedAt not carried over: %v", e.DeletedAt)
	}
}

func TestIdeaMapperNilTagsBecomeEmptyArray(t *testing.T) {
	m := NewIdeaMapper()

	e := &entity.Idea{
		Id:       uuid.New(),
		UserId:   uuid.New(),
		Title:    "no tags",
		Priority: entity.PriorityMedium,
	}

	row := m.ToModel(e)
	if string(row.Tags) != "[]" {
		t.Errorf("nil tags should serialize as empty array, got %s", row.Tags)
	}
}
