package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mindvault-be/internal/dto"
	"mindvault-be/internal/repository/cache"
	"mindvault-be/internal/repository/specification"
	"mindvault-be/internal/repository/unitofwork"

	"mindvault-be/pkg/events"
	pktNats "mindvault-be/pkg/nats"

	"github.com/google/uuid"
)

type IUserService interface {
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error)
	DeleteAccount(ctx context.Context, userId uuid.UUID) error
}

type userService struct {
	uowFactory     unitofwork.RepositoryFactory
	dashboardCache *cache.DashboardCache
	eventPublisher *pktNats.Publisher
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	dashboardCache *cache.DashboardCache,
	eventPublisher *pktNats.Publisher,
) IUserService {
	return &userService{
		uowFactory:     uowFactory,
		dashboardCache: dashboardCache,
		eventPublisher: eventPublisher,
	}
}

func (s *userService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	res := toUserDTO(user)
	return &res, nil
}

// DeleteAccount removes the user and hard-deletes every idea they own in a
// single transaction, so no orphaned rows survive a partial failure.
func (s *userService) DeleteAccount(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.IdeaRepository().DeleteAllByUserIdUnscoped(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.dashboardCache.Invalidate(ctx, userId)

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeUserDeleted,
			Data: map[string]interface{}{
				"user_id": userId,
				"email":   user.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_DELETED event: %v\n", err)
		}
	}

	return nil
}
