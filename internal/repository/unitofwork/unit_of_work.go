package unitofwork

import (
	"context"

	"mindvault-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	IdeaRepository() contract.IdeaRepository
}
