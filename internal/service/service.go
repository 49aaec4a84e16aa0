package service

import (
	"context"

	"github.com/PromoPilot/scheduler-service/internal/dto"
	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/PromoPilot/scheduler-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error)
	FindAll(ctx context.Context) []model.Post
	FindScheduled(ctx context.Context) []model.Post
	FindUnscheduled(ctx context.Context) []model.Post
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID)
	MoveToDate(ctx context.Context, id uuid.UUID, date string) (*model.Post, error)
}

type Calendar interface {
	Grid(ctx context.Context) dto.CalendarResponse
	Next(ctx context.Context) dto.CalendarResponse
	Prev(ctx context.Context) dto.CalendarResponse
}

type Drag interface {
	Start(ctx context.Context, postID uuid.UUID) error
	Over(ctx context.Context, date string) error
	Drop(ctx context.Context, date string) (*model.Post, error)
	Cancel(ctx context.Context) error
	State(ctx context.Context) dto.DragStateResponse
}

type Wizard interface {
	StartCreate(ctx context.Context)
	StartEdit(ctx context.Context, postID uuid.UUID) error
	UpdateDraft(ctx context.Context, req dto.WizardDraftRequest) error
	Next(ctx context.Context) error
	Back(ctx context.Context) error
	Submit(ctx context.Context) (*model.Post, error)
	Cancel(ctx context.Context)
	State(ctx context.Context) dto.WizardStateResponse
}

type Insights interface {
	Heatmap(platform string) dto.HeatmapResponse
	Insights(platform string) dto.InsightsResponse
}

type Service struct {
	Post
	Calendar
	Drag
	Wizard
	Insights
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	posts := newPostService(logger, repo)
	return &Service{
		Post:     posts,
		Calendar: newCalendarService(logger, repo),
		Drag:     newDragService(logger, repo),
		Wizard:   newWizardService(logger, repo, posts),
		Insights: newInsightsService(),
	}
}
