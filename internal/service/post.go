package service

import (
	"context"

	"github.com/PromoPilot/scheduler-service/internal/dto"
	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/PromoPilot/scheduler-service/internal/repository"
	"github.com/PromoPilot/scheduler-service/internal/rules"
	"github.com/PromoPilot/scheduler-service/pkg/scheduleutil"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func (s *postService) Create(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error) {
	wizardType := model.WizardContentType(req.Type)
	if !wizardType.Valid() {
		return nil, ErrInvalidContentType
	}

	platforms, err := parsePlatforms(req.Platforms)
	if err != nil {
		return nil, err
	}

	draft := model.WizardDraft{
		Type:          wizardType,
		Title:         req.Title,
		Caption:       req.Caption,
		Platforms:     platforms,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Thumbnail:     req.Thumbnail,
	}
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	post := model.Post{
		Title:         draft.Title,
		Content:       draft.Caption,
		Type:          draft.Type.Collapse(),
		Platforms:     draft.Platforms,
		ScheduledDate: draft.ScheduledDate,
		ScheduledTime: draft.ScheduledTime,
		Thumbnail:     draft.Thumbnail,
	}

	created, err := s.repo.Memory.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post %q: %s", req.Title, err.Error())
		return nil, err
	}

	return created, nil
}

func (s *postService) FindAll(ctx context.Context) []model.Post {
	return s.repo.Memory.Post.FindAll(ctx)
}

func (s *postService) FindScheduled(ctx context.Context) []model.Post {
	return s.repo.Memory.Post.FindScheduled(ctx)
}

func (s *postService) FindUnscheduled(ctx context.Context) []model.Post {
	return s.repo.Memory.Post.FindUnscheduled(ctx)
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePostRequest) (*model.Post, error) {
	patch := model.PostPatch{
		Title:         req.Title,
		Content:       req.Caption,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Thumbnail:     req.Thumbnail,
	}

	if req.Title != nil && *req.Title == "" {
		return nil, ErrTitleRequired
	}
	if req.Platforms != nil {
		platforms, err := parsePlatforms(*req.Platforms)
		if err != nil {
			return nil, err
		}
		if len(platforms) == 0 {
			return nil, ErrPlatformsRequired
		}

		existing, err := s.repo.Memory.Post.FindByID(ctx, id)
		if err != nil {
			return nil, ErrPostNotFound
		}
		wizardType := model.WizardTypeFor(existing.Type)
		for _, p := range platforms {
			if !rules.PlatformAllowed(wizardType, p) {
				return nil, ErrPlatformNotAllowed
			}
		}

		patch.Platforms = &platforms
	}
	if req.ScheduledDate != nil && *req.ScheduledDate != "" && !scheduleutil.ValidDate(*req.ScheduledDate) {
		return nil, ErrInvalidDate
	}
	if req.ScheduledTime != nil && *req.ScheduledTime != "" && !scheduleutil.ValidClock(*req.ScheduledTime) {
		return nil, ErrInvalidTime
	}

	updated, err := s.repo.Memory.Post.Update(ctx, id, patch)
	if err != nil {
		return nil, ErrPostNotFound
	}

	return updated, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) {
	s.repo.Memory.Post.Delete(ctx, id)
}

func (s *postService) MoveToDate(ctx context.Context, id uuid.UUID, date string) (*model.Post, error) {
	if !scheduleutil.ValidDate(date) {
		return nil, ErrInvalidDate
	}

	moved, err := s.repo.Memory.Post.MoveToDate(ctx, id, date)
	if err != nil {
		return nil, ErrPostNotFound
	}

	return moved, nil
}

// ValidateDraft checks the wizard Configure predicate plus the
// well-formedness of the optional schedule fields.
func ValidateDraft(draft model.WizardDraft) error {
	if draft.Title == "" {
		return ErrTitleRequired
	}
	if len(draft.Platforms) == 0 {
		return ErrPlatformsRequired
	}
	for _, p := range draft.Platforms {
		if !rules.PlatformAllowed(draft.Type, p) {
			return ErrPlatformNotAllowed
		}
	}
	if rules.RequiresCaption(draft.Type) && draft.Caption == "" {
		return ErrCaptionRequired
	}
	if draft.ScheduledDate != "" && !scheduleutil.ValidDate(draft.ScheduledDate) {
		return ErrInvalidDate
	}
	if draft.ScheduledTime != "" && !scheduleutil.ValidClock(draft.ScheduledTime) {
		return ErrInvalidTime
	}
	return nil
}

func parsePlatforms(names []string) ([]model.Platform, error) {
	platforms := lo.Map(names, func(name string, _ int) model.Platform {
		return model.Platform(name)
	})
	for _, p := range platforms {
		if !p.Valid() {
			return nil, ErrInvalidPlatform
		}
	}
	return platforms, nil
}
