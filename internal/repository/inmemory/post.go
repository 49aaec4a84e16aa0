package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/PromoPilot/scheduler-service/pkg/scheduleutil"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// postRepo keeps posts in a slice so that queries preserve insertion
// order; cell-level sorting relies on that order being stable.
type postRepo struct {
	logger *zap.Logger

	mu    sync.RWMutex
	posts []model.Post
}

func newPostRepo(logger *zap.Logger) Post {
	return &postRepo{
		logger: logger,
	}
}

func (r *postRepo) Create(_ context.Context, post model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = uuid.New()
	post.CreatedAt = time.Now()
	normalizeSchedule(&post)

	r.posts = append(r.posts, post)
	r.logger.Sugar().Debugf("stored post(%s) %q", post.ID.String(), post.Title)

	return &post, nil
}

func (r *postRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			found := clone(p)
			return &found, nil
		}
	}
	return nil, ErrPostNotFound
}

func (r *postRepo) FindAll(_ context.Context) []model.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.posts, func(p model.Post, _ int) model.Post {
		return clone(p)
	})
}

func (r *postRepo) FindScheduled(ctx context.Context) []model.Post {
	return lo.Filter(r.FindAll(ctx), func(p model.Post, _ int) bool {
		return p.Scheduled()
	})
}

func (r *postRepo) FindUnscheduled(ctx context.Context) []model.Post {
	return lo.Filter(r.FindAll(ctx), func(p model.Post, _ int) bool {
		return !p.Scheduled()
	})
}

func (r *postRepo) Update(_ context.Context, id uuid.UUID, patch model.PostPatch) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID != id {
			continue
		}

		post := &r.posts[i]
		if patch.Title != nil {
			post.Title = *patch.Title
		}
		if patch.Content != nil {
			post.Content = *patch.Content
		}
		if patch.Type != nil {
			post.Type = *patch.Type
		}
		if patch.Platforms != nil {
			post.Platforms = append([]model.Platform(nil), *patch.Platforms...)
		}
		if patch.ScheduledDate != nil {
			post.ScheduledDate = *patch.ScheduledDate
		}
		if patch.ScheduledTime != nil {
			post.ScheduledTime = *patch.ScheduledTime
		}
		if patch.Thumbnail != nil {
			post.Thumbnail = *patch.Thumbnail
		}
		normalizeSchedule(post)

		found := clone(*post)
		return &found, nil
	}

	return nil, ErrPostNotFound
}

func (r *postRepo) Delete(_ context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// deleting an absent id is a no-op
	r.posts = lo.Filter(r.posts, func(p model.Post, _ int) bool {
		return p.ID != id
	})
}

func (r *postRepo) MoveToDate(_ context.Context, id uuid.UUID, date string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID != id {
			continue
		}

		post := &r.posts[i]
		post.ScheduledDate = date
		normalizeSchedule(post)

		found := clone(*post)
		return &found, nil
	}

	return nil, ErrPostNotFound
}

// normalizeSchedule keeps the date/time invariant: a scheduled post
// always carries a clock time.
func normalizeSchedule(post *model.Post) {
	if post.ScheduledDate != "" && post.ScheduledTime == "" {
		post.ScheduledTime = scheduleutil.DefaultClock
	}
}

func clone(p model.Post) model.Post {
	p.Platforms = append([]model.Platform(nil), p.Platforms...)
	return p
}
