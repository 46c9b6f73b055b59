package dashboard

import (
	"context"
	"time"

	"mindvault-be/internal/dto"
	"mindvault-be/internal/pkg/logger"
	"mindvault-be/internal/repository/specification"
	"mindvault-be/internal/repository/unitofwork"

	"mindvault-be/pkg/smart"
)

// Aggregator computes the instance-wide numbers for the admin dashboard.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetStats retrieves admin dashboard statistics.
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.AdminStatsResponse, error) {
	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totalIdeas, err := uow.IdeaRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	weekAgo := time.Now().Add(-7 * 24 * time.Hour)

	ideasThisWeek, err := uow.IdeaRepository().Count(ctx, specification.CreatedAfter{Cutoff: weekAgo})
	if err != nil {
		return nil, err
	}

	activeThisWeek, err := uow.UserRepository().Count(ctx, specification.ActiveSince{Cutoff: weekAgo})
	if err != nil {
		return nil, err
	}

	favorited, err := uow.IdeaRepository().Count(ctx, specification.FavoritesOnly{})
	if err != nil {
		return nil, err
	}

	combined, err := uow.IdeaRepository().Count(ctx, specification.ByCategory{Category: smart.CategoryFusion})
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalUsers:     totalUsers,
		TotalIdeas:     totalIdeas,
		IdeasThisWeek:  ideasThisWeek,
		ActiveThisWeek: activeThisWeek,
		FavoritedIdeas: favorited,
		CombinedIdeas:  combined,
	}, nil
}
