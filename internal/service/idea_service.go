package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mindvault-be/internal/dto"
	"mindvault-be/internal/entity"
	"mindvault-be/internal/repository/cache"
	"mindvault-be/internal/repository/specification"
	"mindvault-be/internal/repository/unitofwork"

	"mindvault-be/pkg/events"
	pktNats "mindvault-be/pkg/nats"
	"mindvault-be/pkg/smart"

	"github.com/google/uuid"
)

// maxListResults caps a single list query; clients never page past this.
const maxListResults = 1000

type IIdeaService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error)
	List(ctx context.Context, userId uuid.UUID, query dto.ListIdeasQuery) ([]dto.IdeaResponse, error)
	Get(ctx context.Context, userId, ideaId uuid.UUID) (*dto.IdeaResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error)
	Delete(ctx context.Context, userId, ideaId uuid.UUID) error
	Suggestions(ctx context.Context, userId, ideaId uuid.UUID) (*dto.SmartSuggestionResponse, error)
	Combine(ctx context.Context, userId uuid.UUID, req *dto.CombineIdeasRequest) (*dto.IdeaResponse, error)
}

type ideaService struct {
	uowFactory        unitofwork.RepositoryFactory
	dashboardCache    *cache.DashboardCache
	eventPublisher    *pktNats.Publisher
	activityPublisher IPublisherService
}

func NewIdeaService(
	uowFactory unitofwork.RepositoryFactory,
	dashboardCache *cache.DashboardCache,
	eventPublisher *pktNats.Publisher,
	activityPublisher IPublisherService,
) IIdeaService {
	return &ideaService{
		uowFactory:        uowFactory,
		dashboardCache:    dashboardCache,
		eventPublisher:    eventPublisher,
		activityPublisher: activityPublisher,
	}
}

func toIdeaResponse(idea *entity.Idea) dto.IdeaResponse {
	tags := idea.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.IdeaResponse{
		Id:         idea.Id,
		UserId:     idea.UserId,
		Title:      idea.Title,
		Content:    idea.Content,
		Tags:       tags,
		Priority:   string(idea.Priority),
		Category:   idea.Category,
		IsFavorite: idea.IsFavorite,
		CreatedAt:  idea.CreatedAt,
		UpdatedAt:  idea.UpdatedAt,
	}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (s *ideaService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error) {
	priority := entity.PriorityLevel(req.Priority)
	if req.Priority == "" {
		priority = entity.PriorityMedium
	}
	if !priority.Valid() {
		return nil, errors.New("invalid priority")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = smart.Categorize(req.Title, req.Content)
	}

	idea := &entity.Idea{
		Id:         uuid.New(),
		UserId:     userId,
		Title:      req.Title,
		Content:    req.Content,
		Tags:       normalizeTags(req.Tags),
		Priority:   priority,
		Category:   category,
		IsFavorite: false,
		CreatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.IdeaRepository().Create(ctx, idea); err != nil {
		return nil, err
	}

	s.dashboardCache.Invalidate(ctx, userId)

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeIdeaCreated,
			Data: map[string]interface{}{
				"idea_id":  idea.Id,
				"user_id":  userId,
				"category": idea.Category,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish IDEA_CREATED event: %v\n", err)
		}
	}

	publishActivity(ctx, s.activityPublisher, userId)

	res := toIdeaResponse(idea)
	return &res, nil
}

func listSpecs(userId uuid.UUID, query dto.ListIdeasQuery) []specification.Specification {
	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
	}
	if query.Tag != "" {
		specs = append(specs, specification.HasTag{Tag: strings.ToLower(query.Tag)})
	}
	if query.Category != "" {
		specs = append(specs, specification.ByCategory{Category: query.Category})
	}
	if query.Priority != "" {
		specs = append(specs, specification.ByPriority{Priority: query.Priority})
	}

	// Timeline is the default view and sorts strictly chronologically; any
	// other mode surfaces the most recently touched ideas first.
	if query.ViewMode == "" || query.ViewMode == "timeline" {
		specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	} else {
		specs = append(specs, specification.OrderBy{Field: "COALESCE(updated_at, created_at)", Desc: true})
	}
	return append(specs, specification.Pagination{Limit: maxListResults})
}

func (s *ideaService) List(ctx context.Context, userId uuid.UUID, query dto.ListIdeasQuery) ([]dto.IdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ideas, err := uow.IdeaRepository().FindAll(ctx, listSpecs(userId, query)...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.IdeaResponse, 0, len(ideas))
	for _, idea := range ideas {
		responses = append(responses, toIdeaResponse(idea))
	}
	return responses, nil
}

func (s *ideaService) Get(ctx context.Context, userId, ideaId uuid.UUID) (*dto.IdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.IdeaRepository().FindOne(ctx,
		specification.ByID{ID: ideaId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, nil
	}
	res := toIdeaResponse(idea)
	return &res, nil
}

func (s *ideaService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.IdeaRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, nil
	}

	if req.Title != nil {
		idea.Title = *req.Title
	}
	if req.Content != nil {
		idea.Content = *req.Content
	}
	if req.Tags != nil {
		idea.Tags = normalizeTags(*req.Tags)
	}
	if req.Priority != nil {
		priority := entity.PriorityLevel(*req.Priority)
		if !priority.Valid() {
			return nil, errors.New("invalid priority")
		}
		idea.Priority = priority
	}
	if req.IsFavorite != nil {
		idea.IsFavorite = *req.IsFavorite
	}
	if req.Category != nil {
		idea.Category = *req.Category
	}

	now := time.Now()
	idea.UpdatedAt = &now

	if err := uow.IdeaRepository().Update(ctx, idea); err != nil {
		return nil, err
	}

	s.dashboardCache.Invalidate(ctx, userId)
	publishActivity(ctx, s.activityPublisher, userId)

	res := toIdeaResponse(idea)
	return &res, nil
}

func (s *ideaService) Delete(ctx context.Context, userId, ideaId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.IdeaRepository().FindOne(ctx,
		specification.ByID{ID: ideaId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if idea == nil {
		return errors.New("idea not found")
	}

	if err := uow.IdeaRepository().Delete(ctx, ideaId); err != nil {
		return err
	}

	s.dashboardCache.Invalidate(ctx, userId)

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeIdeaDeleted,
			Data: map[string]interface{}{
				"idea_id": ideaId,
				"user_id": userId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish IDEA_DELETED event: %v\n", err)
		}
	}

	publishActivity(ctx, s.activityPublisher, userId)
	return nil
}

func (s *ideaService) Suggestions(ctx context.Context, userId, ideaId uuid.UUID) (*dto.SmartSuggestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := uow.IdeaRepository().FindOne(ctx,
		specification.ByID{ID: ideaId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, nil
	}

	suggestions := smart.SuggestTags(idea.Content, idea.Tags)

	publishActivity(ctx, s.activityPublisher, userId)

	return &dto.SmartSuggestionResponse{
		Type:        "tag",
		Suggestions: suggestions,
		Confidence:  smart.SuggestionConfidence,
	}, nil
}

func (s *ideaService) Combine(ctx context.Context, userId uuid.UUID, req *dto.CombineIdeasRequest) (*dto.IdeaResponse, error) {
	if req.Idea1Id == req.Idea2Id {
		return nil, errors.New("cannot combine an idea with itself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sources, err := uow.IdeaRepository().FindAll(ctx,
		specification.ByIDs{IDs: []uuid.UUID{req.Idea1Id, req.Idea2Id}},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if len(sources) != 2 {
		return nil, errors.New("one or both ideas not found")
	}

	// The fusion template is source-order sensitive, and FindAll does not
	// guarantee request order.
	first, second := sources[0], sources[1]
	if first.Id != req.Idea1Id {
		first, second = second, first
	}

	fused := smart.Fuse(
		smart.FusionInput{Title: first.Title, Content: first.Content, Tags: first.Tags, Priority: string(first.Priority)},
		smart.FusionInput{Title: second.Title, Content: second.Content, Tags: second.Tags, Priority: string(second.Priority)},
		req.NewTitle,
	)

	combined := &entity.Idea{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     fused.Title,
		Content:   fused.Content,
		Tags:      fused.Tags,
		Priority:  entity.PriorityLevel(fused.Priority),
		Category:  fused.Category,
		CreatedAt: time.Now(),
	}

	if err := uow.IdeaRepository().Create(ctx, combined); err != nil {
		return nil, err
	}

	s.dashboardCache.Invalidate(ctx, userId)

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeIdeasCombined,
			Data: map[string]interface{}{
				"idea_id":  combined.Id,
				"user_id":  userId,
				"source_1": first.Id,
				"source_2": second.Id,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish IDEAS_COMBINED event: %v\n", err)
		}
	}

	publishActivity(ctx, s.activityPublisher, userId)

	res := toIdeaResponse(combined)
	return &res, nil
}
