package service

import (
	"context"
	"time"

	"mindvault-be/internal/dto"
	"mindvault-be/internal/entity"
	"mindvault-be/internal/repository/cache"
	"mindvault-be/internal/repository/specification"
	"mindvault-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const recentActivityWindow = 7 * 24 * time.Hour

type IAnalyticsService interface {
	Dashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardStats, error)
}

type analyticsService struct {
	uowFactory        unitofwork.RepositoryFactory
	dashboardCache    *cache.DashboardCache
	activityPublisher IPublisherService
}

func NewAnalyticsService(
	uowFactory unitofwork.RepositoryFactory,
	dashboardCache *cache.DashboardCache,
	activityPublisher IPublisherService,
) IAnalyticsService {
	return &analyticsService{
		uowFactory:        uowFactory,
		dashboardCache:    dashboardCache,
		activityPublisher: activityPublisher,
	}
}

func (s *analyticsService) Dashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardStats, error) {
	if cached, hit := s.dashboardCache.Get(ctx, userId); hit {
		publishActivity(ctx, s.activityPublisher, userId)
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	ideas := uow.IdeaRepository()
	owned := specification.UserOwnedBy{UserID: userId}

	total, err := ideas.Count(ctx, owned)
	if err != nil {
		return nil, err
	}

	var breakdown dto.PriorityBreakdown
	for _, p := range []struct {
		level entity.PriorityLevel
		dst   *int64
	}{
		{entity.PriorityHigh, &breakdown.High},
		{entity.PriorityMedium, &breakdown.Medium},
		{entity.PriorityLow, &breakdown.Low},
	} {
		count, err := ideas.Count(ctx, owned, specification.ByPriority{Priority: string(p.level)})
		if err != nil {
			return nil, err
		}
		*p.dst = count
	}

	categoryCounts, err := ideas.CategoryCounts(ctx, owned)
	if err != nil {
		return nil, err
	}
	categories := make(map[string]int64, len(categoryCounts))
	for _, cc := range categoryCounts {
		categories[cc.Category] = cc.Count
	}

	recent, err := ideas.Count(ctx, owned, specification.CreatedAfter{Cutoff: time.Now().Add(-recentActivityWindow)})
	if err != nil {
		return nil, err
	}

	favorites, err := ideas.Count(ctx, owned, specification.FavoritesOnly{})
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{
		TotalIdeas:        total,
		PriorityBreakdown: breakdown,
		CategoryBreakdown: categories,
		RecentActivity:    recent,
		FavoriteCount:     favorites,
	}

	s.dashboardCache.Set(ctx, userId, stats)
	publishActivity(ctx, s.activityPublisher, userId)

	return stats, nil
}
