package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/PromoPilot/scheduler-service/internal/dto"
	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/PromoPilot/scheduler-service/internal/repository"
	"github.com/PromoPilot/scheduler-service/pkg/scheduleutil"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	gridCells = 42 // six full Sunday-first weeks

	// navWindowMonths bounds pivot navigation to [now-3, now+3] months.
	navWindowMonths = 3
)

// BuildGrid projects the post collection onto a six-week month grid
// around the pivot. It is a pure function of its inputs: exactly 42
// cells, Sunday-first, padded with trailing and leading days of the
// neighbouring months.
func BuildGrid(pivot time.Time, posts []model.Post) []model.CalendarDay {
	first := scheduleutil.FirstOfMonth(pivot)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	scheduled := lo.Filter(posts, func(p model.Post, _ int) bool {
		return p.Scheduled()
	})
	// Stable: posts sharing a time keep their insertion order.
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].ScheduledTime < scheduled[j].ScheduledTime
	})

	days := make([]model.CalendarDay, 0, gridCells)
	for i := 0; i < gridCells; i++ {
		day := start.AddDate(0, 0, i)
		date := scheduleutil.FormatDate(day)

		days = append(days, model.CalendarDay{
			Date:           date,
			IsCurrentMonth: day.Month() == first.Month() && day.Year() == first.Year(),
			Posts: lo.Filter(scheduled, func(p model.Post, _ int) bool {
				return p.ScheduledDate == date
			}),
		})
	}

	return days
}

type calendarService struct {
	logger *zap.Logger
	repo   *repository.Repository
	now    func() time.Time

	mu    sync.Mutex
	pivot time.Time // first day of the pivot month
}

func newCalendarService(logger *zap.Logger, repo *repository.Repository) Calendar {
	s := &calendarService{
		logger: logger,
		repo:   repo,
		now:    time.Now,
	}
	s.pivot = scheduleutil.FirstOfMonth(s.now())
	return s
}

func (s *calendarService) Grid(ctx context.Context) dto.CalendarResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.response(ctx)
}

func (s *calendarService) Next(ctx context.Context) dto.CalendarResponse {
	return s.navigate(ctx, 1)
}

func (s *calendarService) Prev(ctx context.Context) dto.CalendarResponse {
	return s.navigate(ctx, -1)
}

// navigate moves the pivot by delta months, clamped to the navigation
// window. Out-of-window moves leave the pivot unchanged. The window is
// evaluated against the clock at call time, not at session start.
func (s *calendarService) navigate(ctx context.Context, delta int) dto.CalendarResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := s.pivot.AddDate(0, delta, 0)
	if s.withinWindow(candidate) {
		s.pivot = candidate
	}

	return s.response(ctx)
}

func (s *calendarService) response(ctx context.Context) dto.CalendarResponse {
	return dto.CalendarResponse{
		Pivot:     s.pivot.Format("2006-01"),
		Days:      BuildGrid(s.pivot, s.repo.Memory.Post.FindAll(ctx)),
		CanGoPrev: s.withinWindow(s.pivot.AddDate(0, -1, 0)),
		CanGoNext: s.withinWindow(s.pivot.AddDate(0, 1, 0)),
	}
}

func (s *calendarService) withinWindow(candidate time.Time) bool {
	diff := scheduleutil.MonthIndex(candidate) - scheduleutil.MonthIndex(s.now())
	return diff >= -navWindowMonths && diff <= navWindowMonths
}
