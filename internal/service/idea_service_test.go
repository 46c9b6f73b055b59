package service

import (
	"testing"

	"mindvault-be/internal/dto"
	"mindvault-be/internal/repository/specification"

	"github.com/google/uuid"
)

func TestListSpecs(t *testing.T) {
	userId := uuid.New()

	t.Run("always bounded by the result cap", func(t *testing.T) {
		specs := listSpecs(userId, dto.ListIdeasQuery{})

		last, ok := specs[len(specs)-1].(specification.Pagination)
		if !ok {
			t.Fatalf("last spec = %T, want specification.Pagination", specs[len(specs)-1])
		}
		if last.Limit != maxListResults {
			t.Errorf("limit = %d, want %d", last.Limit, maxListResults)
		}
	})

	t.Run("timeline is the default ordering", func(t *testing.T) {
		for _, mode := range []string{"", "timeline"} {
			specs := listSpecs(userId, dto.ListIdeasQuery{ViewMode: mode})
			order := findOrderBy(t, specs)
			if order.Field != "created_at" || !order.Desc {
				t.Errorf("view_mode %q: order = %+v, want created_at desc", mode, order)
			}
		}
	})

	t.Run("other modes sort by last touch", func(t *testing.T) {
		specs := listSpecs(userId, dto.ListIdeasQuery{ViewMode: "grid"})
		order := findOrderBy(t, specs)
		if order.Field != "COALESCE(updated_at, created_at)" || !order.Desc {
			t.Errorf("order = %+v, want COALESCE(updated_at, created_at) desc", order)
		}
	})

	t.Run("tag filter is lowercased", func(t *testing.T) {
		specs := listSpecs(userId, dto.ListIdeasQuery{Tag: "Robotics"})
		for _, s := range specs {
			if tagSpec, ok := s.(specification.HasTag); ok {
				if tagSpec.Tag != "robotics" {
					t.Errorf("tag = %q, want %q", tagSpec.Tag, "robotics")
				}
				return
			}
		}
		t.Fatal("no HasTag spec built for tag query")
	})
}

func findOrderBy(t *testing.T, specs []specification.Specification) specification.OrderBy {
	t.Helper()
	for _, s := range specs {
		if order, ok := s.(specification.OrderBy); ok {
			return order
		}
	}
	t.Fatal("no OrderBy spec built")
	return specification.OrderBy{}
}
