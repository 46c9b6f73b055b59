package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"mindvault-be/internal/entity"
	"mindvault-be/internal/repository/specification"
	"mindvault-be/internal/repository/unitofwork"
	"mindvault-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.IdeaRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Idea Repository", func(t *testing.T) {
		count, err := uow.IdeaRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Idea count: %d", count)
	})

	t.Run("Idea round trip with jsonb tags", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:         uuid.New(),
			Email:      "test-integration-" + uuid.New().String() + "@example.com",
			Username:   "itest-" + uuid.New().String()[:8],
			Role:       entity.UserRoleUser,
			LastActive: time.Now(),
			CreatedAt:  time.Now(),
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		idea := &entity.Idea{
			Id:        uuid.New(),
			UserId:    user.Id,
			Title:     "Integration idea",
			Content:   "Checking jsonb tag storage end to end.",
			Tags:      []string{"integration", "storage"},
			Priority:  entity.PriorityHigh,
			Category:  "research",
			CreatedAt: time.Now(),
		}
		err = uow.IdeaRepository().Create(ctx, idea)
		assert.NoError(t, err)

		found, err := uow.IdeaRepository().FindOne(ctx,
			specification.ByID{ID: idea.Id},
			specification.UserOwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, []string{"integration", "storage"}, found.Tags)
			assert.Equal(t, entity.PriorityHigh, found.Priority)
		}

		tagged, err := uow.IdeaRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: user.Id},
			specification.HasTag{Tag: "integration"},
		)
		assert.NoError(t, err)
		assert.Len(t, tagged, 1)

		// Cleanup
		err = uow.IdeaRepository().DeleteAllByUserIdUnscoped(ctx, user.Id)
		assert.NoError(t, err)
		err = uow.UserRepository().Delete(ctx, user.Id)
		assert.NoError(t, err)
	})

	t.Run("Transaction rollback leaves no rows", func(t *testing.T) {
		ctx := context.Background()
		txUow := uowFactory.NewUnitOfWork(ctx)

		err := txUow.Begin(ctx)
		assert.NoError(t, err)

		user := &entity.User{
			Id:         uuid.New(),
			Email:      "rollback-" + uuid.New().String() + "@example.com",
			Username:   "rb-" + uuid.New().String()[:8],
			Role:       entity.UserRoleUser,
			LastActive: time.Now(),
			CreatedAt:  time.Now(),
		}
		err = txUow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		err = txUow.Rollback()
		assert.NoError(t, err)

		found, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
