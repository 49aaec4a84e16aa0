package inmemory

import (
	"context"

	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindAll(ctx context.Context) []model.Post
	FindScheduled(ctx context.Context) []model.Post
	FindUnscheduled(ctx context.Context) []model.Post
	Update(ctx context.Context, id uuid.UUID, patch model.PostPatch) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID)
	MoveToDate(ctx context.Context, id uuid.UUID, date string) (*model.Post, error)
}

type MemoryRepository struct {
	Post
}

func New(logger *zap.Logger) *MemoryRepository {
	return &MemoryRepository{
		Post: newPostRepo(logger),
	}
}
