package service

import (
	"context"
	"sync"

	"github.com/PromoPilot/scheduler-service/internal/dto"
	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/PromoPilot/scheduler-service/internal/repository"
	"github.com/PromoPilot/scheduler-service/pkg/scheduleutil"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

const (
	dragStateIdle     = "idle"
	dragStateDragging = "dragging"

	dragEventStart  = "start"
	dragEventDrop   = "drop"
	dragEventCancel = "cancel"
)

// dragService serializes the single drag session: one post is dragged
// at a time, and only the drop mutates the store.
type dragService struct {
	logger *zap.Logger
	repo   *repository.Repository

	mu        sync.Mutex
	sm        *fsm.FSM
	postID    uuid.UUID
	hoverDate string
}

func newDragService(logger *zap.Logger, repo *repository.Repository) Drag {
	return &dragService{
		logger: logger,
		repo:   repo,
		sm:     newDragFSM(),
	}
}

func newDragFSM() *fsm.FSM {
	return fsm.NewFSM(
		dragStateIdle,
		fsm.Events{
			{Name: dragEventStart, Src: []string{dragStateIdle}, Dst: dragStateDragging},
			{Name: dragEventDrop, Src: []string{dragStateDragging}, Dst: dragStateIdle},
			{Name: dragEventCancel, Src: []string{dragStateDragging}, Dst: dragStateIdle},
		},
		fsm.Callbacks{},
	)
}

func (s *dragService) Start(ctx context.Context, postID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.Memory.Post.FindByID(ctx, postID); err != nil {
		return ErrPostNotFound
	}

	if err := s.sm.Event(ctx, dragEventStart); err != nil {
		return ErrDragInProgress
	}

	s.postID = postID
	s.hoverDate = ""
	return nil
}

// Over updates the transient hover target. Display-only: the store is
// untouched until the drop.
func (s *dragService) Over(ctx context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sm.Is(dragStateDragging) {
		return ErrNoDragInProgress
	}
	if !scheduleutil.ValidDate(date) {
		return ErrInvalidDate
	}

	s.hoverDate = date
	return nil
}

// Drop ends the session. With a target date the dragged post is moved
// to that date; with an empty date the drag was released outside any
// cell and nothing changes.
func (s *dragService) Drop(ctx context.Context, date string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if date != "" && !scheduleutil.ValidDate(date) {
		return nil, ErrInvalidDate
	}

	if err := s.sm.Event(ctx, dragEventDrop); err != nil {
		return nil, ErrNoDragInProgress
	}

	postID := s.postID
	s.postID = uuid.Nil
	s.hoverDate = ""

	if date == "" {
		return nil, nil
	}

	moved, err := s.repo.Memory.Post.MoveToDate(ctx, postID, date)
	if err != nil {
		s.logger.Sugar().Errorf("failed to move post(%s) to %s: %s", postID.String(), date, err.Error())
		return nil, ErrPostNotFound
	}

	return moved, nil
}

func (s *dragService) Cancel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// cancelling with no active session is a no-op
	if s.sm.Is(dragStateIdle) {
		return nil
	}

	if err := s.sm.Event(ctx, dragEventCancel); err != nil {
		return ErrNoDragInProgress
	}

	s.postID = uuid.Nil
	s.hoverDate = ""
	return nil
}

func (s *dragService) State(_ context.Context) dto.DragStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := dto.DragStateResponse{
		State: s.sm.Current(),
	}
	if s.sm.Is(dragStateDragging) {
		resp.PostID = s.postID.String()
		resp.HoverDate = s.hoverDate
	}
	return resp
}
