package service

import (
	"context"
	"errors"
	"time"

	"mindvault-be/internal/dto"
	"mindvault-be/internal/pkg/logger"
	"mindvault-be/internal/repository/specification"
	"mindvault-be/internal/repository/unitofwork"
	"mindvault-be/pkg/admin/dashboard"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetAllUsers(ctx context.Context) ([]dto.AdminUserResponse, error)
	ExportUserData(ctx context.Context, userId uuid.UUID) (*dto.UserExportResponse, error)
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
	GetLogDetail(ctx context.Context, logId string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *dashboard.Aggregator
	logger     logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	aggregator *dashboard.Aggregator,
	appLogger logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		aggregator: aggregator,
		logger:     appLogger,
	}
}

func (s *adminService) GetAllUsers(ctx context.Context) ([]dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AdminUserResponse, 0, len(users))
	for _, user := range users {
		ideaCount, err := uow.IdeaRepository().Count(ctx, specification.UserOwnedBy{UserID: user.Id})
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.AdminUserResponse{
			Id:         user.Id,
			Email:      user.Email,
			Username:   user.Username,
			Role:       string(user.Role),
			LastActive: user.LastActive,
			CreatedAt:  user.CreatedAt,
			IdeaCount:  ideaCount,
		})
	}
	return responses, nil
}

func (s *adminService) ExportUserData(ctx context.Context, userId uuid.UUID) (*dto.UserExportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	ideas, err := uow.IdeaRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	ideaResponses := make([]dto.IdeaResponse, 0, len(ideas))
	for _, idea := range ideas {
		ideaResponses = append(ideaResponses, toIdeaResponse(idea))
	}

	return &dto.UserExportResponse{
		User:       toUserDTO(user),
		Ideas:      ideaResponses,
		ExportDate: time.Now(),
		TotalIdeas: len(ideaResponses),
	}, nil
}

func (s *adminService) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.aggregator.GetStats(ctx, uow)
}

func (s *adminService) GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(level, limit, offset)
}

func (s *adminService) GetLogDetail(ctx context.Context, logId string) (*logger.LogEntry, error) {
	return s.logger.GetLogById(logId)
}
