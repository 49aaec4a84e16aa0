package service

import (
	"context"
	"sync"

	"github.com/PromoPilot/scheduler-service/internal/dto"
	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/PromoPilot/scheduler-service/internal/repository"
	"github.com/PromoPilot/scheduler-service/internal/rules"
	"github.com/PromoPilot/scheduler-service/pkg/scheduleutil"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	stepType      = "type"
	stepSource    = "source"
	stepConfigure = "configure"
	stepSchedule  = "schedule"

	wizardEventNext = "next"
	wizardEventBack = "back"
)

var stepNumbers = map[string]int{
	stepType:      1,
	stepSource:    2,
	stepConfigure: 3,
	stepSchedule:  4,
}

// wizardService drives the four-step creation/edit wizard. Forward
// transitions are gated on the current step's validity predicate;
// backward transitions are always permitted.
type wizardService struct {
	logger *zap.Logger
	repo   *repository.Repository
	posts  Post

	mu      sync.Mutex
	sm      *fsm.FSM
	draft   model.WizardDraft
	active  bool
	editing bool
}

func newWizardService(logger *zap.Logger, repo *repository.Repository, posts Post) Wizard {
	return &wizardService{
		logger: logger,
		repo:   repo,
		posts:  posts,
	}
}

// newWizardFSM builds the step machine. The edit flow starts at
// Configure and skips the Source step in both directions: the source
// of an existing post is implicitly the library.
func newWizardFSM(editing bool) *fsm.FSM {
	if editing {
		return fsm.NewFSM(
			stepConfigure,
			fsm.Events{
				{Name: wizardEventNext, Src: []string{stepType}, Dst: stepConfigure},
				{Name: wizardEventNext, Src: []string{stepConfigure}, Dst: stepSchedule},
				{Name: wizardEventBack, Src: []string{stepSchedule}, Dst: stepConfigure},
				{Name: wizardEventBack, Src: []string{stepConfigure}, Dst: stepType},
			},
			fsm.Callbacks{},
		)
	}
	return fsm.NewFSM(
		stepType,
		fsm.Events{
			{Name: wizardEventNext, Src: []string{stepType}, Dst: stepSource},
			{Name: wizardEventNext, Src: []string{stepSource}, Dst: stepConfigure},
			{Name: wizardEventNext, Src: []string{stepConfigure}, Dst: stepSchedule},
			{Name: wizardEventBack, Src: []string{stepSchedule}, Dst: stepConfigure},
			{Name: wizardEventBack, Src: []string{stepConfigure}, Dst: stepSource},
			{Name: wizardEventBack, Src: []string{stepSource}, Dst: stepType},
		},
		fsm.Callbacks{},
	)
}

func (s *wizardService) StartCreate(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sm = newWizardFSM(false)
	s.draft = model.WizardDraft{Type: model.WizardPost}
	s.active = true
	s.editing = false
}

func (s *wizardService) StartEdit(ctx context.Context, postID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.repo.Memory.Post.FindByID(ctx, postID)
	if err != nil {
		return ErrPostNotFound
	}

	s.sm = newWizardFSM(true)
	s.draft = model.WizardDraft{
		PostID:        &post.ID,
		Type:          model.WizardTypeFor(post.Type),
		Source:        model.SourceLibrary,
		Title:         post.Title,
		Caption:       post.Content,
		Platforms:     append([]model.Platform(nil), post.Platforms...),
		ScheduledDate: post.ScheduledDate,
		ScheduledTime: post.ScheduledTime,
		Thumbnail:     post.Thumbnail,
	}
	s.active = true
	s.editing = true
	return nil
}

func (s *wizardService) UpdateDraft(_ context.Context, req dto.WizardDraftRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrWizardNotStarted
	}

	if req.Type != nil {
		newType := model.WizardContentType(*req.Type)
		if !newType.Valid() {
			return ErrInvalidContentType
		}
		if newType != s.draft.Type {
			// previously chosen platforms may be invalid for the
			// new type
			s.draft.Type = newType
			s.draft.Platforms = nil
		}
	}
	if req.Source != nil {
		source := model.DraftSource(*req.Source)
		if !source.Valid() {
			return ErrInvalidSource
		}
		s.draft.Source = source
	}
	if req.Title != nil {
		s.draft.Title = *req.Title
	}
	if req.Caption != nil {
		s.draft.Caption = *req.Caption
	}
	if req.Platforms != nil {
		platforms, err := parsePlatforms(*req.Platforms)
		if err != nil {
			return err
		}
		// only platforms allowed for the draft's type are kept
		s.draft.Platforms = lo.Filter(platforms, func(p model.Platform, _ int) bool {
			return rules.PlatformAllowed(s.draft.Type, p)
		})
	}
	if req.ScheduledDate != nil {
		if *req.ScheduledDate != "" && !scheduleutil.ValidDate(*req.ScheduledDate) {
			return ErrInvalidDate
		}
		s.draft.ScheduledDate = *req.ScheduledDate
	}
	if req.ScheduledTime != nil {
		if *req.ScheduledTime != "" && !scheduleutil.ValidClock(*req.ScheduledTime) {
			return ErrInvalidTime
		}
		s.draft.ScheduledTime = *req.ScheduledTime
	}
	if req.Thumbnail != nil {
		s.draft.Thumbnail = *req.Thumbnail
	}

	return nil
}

func (s *wizardService) Next(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrWizardNotStarted
	}
	if !s.stepValid() {
		return ErrStepBlocked
	}

	if err := s.sm.Event(ctx, wizardEventNext); err != nil {
		// the schedule step has no forward transition
		return ErrStepBlocked
	}
	return nil
}

func (s *wizardService) Back(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrWizardNotStarted
	}

	// going back from the first step is a no-op
	_ = s.sm.Event(ctx, wizardEventBack)
	return nil
}

func (s *wizardService) Submit(ctx context.Context) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, ErrWizardNotStarted
	}
	if !s.sm.Is(stepSchedule) {
		return nil, ErrNotAtFinalStep
	}
	if err := ValidateDraft(s.draft); err != nil {
		return nil, err
	}

	var (
		post *model.Post
		err  error
	)
	if s.editing && s.draft.PostID != nil {
		contentType := s.draft.Type.Collapse()
		post, err = s.repo.Memory.Post.Update(ctx, *s.draft.PostID, model.PostPatch{
			Title:         &s.draft.Title,
			Content:       &s.draft.Caption,
			Type:          &contentType,
			Platforms:     &s.draft.Platforms,
			ScheduledDate: &s.draft.ScheduledDate,
			ScheduledTime: &s.draft.ScheduledTime,
			Thumbnail:     &s.draft.Thumbnail,
		})
		if err != nil {
			s.logger.Sugar().Errorf("failed to update post(%s) from wizard: %s", s.draft.PostID.String(), err.Error())
			return nil, ErrPostNotFound
		}
	} else {
		post, err = s.posts.Create(ctx, dto.CreatePostRequest{
			Title:   s.draft.Title,
			Type:    string(s.draft.Type),
			Caption: s.draft.Caption,
			Platforms: lo.Map(s.draft.Platforms, func(p model.Platform, _ int) string {
				return string(p)
			}),
			ScheduledDate: s.draft.ScheduledDate,
			ScheduledTime: s.draft.ScheduledTime,
			Thumbnail:     s.draft.Thumbnail,
		})
		if err != nil {
			return nil, err
		}
	}

	s.reset()
	return post, nil
}

func (s *wizardService) Cancel(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// discards the draft without touching the store
	s.reset()
}

func (s *wizardService) State(_ context.Context) dto.WizardStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return dto.WizardStateResponse{}
	}

	draft := s.draft
	return dto.WizardStateResponse{
		Active:           true,
		Editing:          s.editing,
		Step:             stepNumbers[s.sm.Current()],
		StepName:         s.sm.Current(),
		Draft:            &draft,
		StepValid:        s.stepValid(),
		SubmitValid:      ValidateDraft(s.draft) == nil,
		AllowedPlatforms: rules.AllowedPlatforms(s.draft.Type),
		RequiresCaption:  rules.RequiresCaption(s.draft.Type),
	}
}

// stepValid is the forward-gating predicate for the current step.
func (s *wizardService) stepValid() bool {
	switch s.sm.Current() {
	case stepType:
		return s.draft.Type.Valid()
	case stepSource:
		return s.draft.Source.Valid()
	case stepConfigure:
		return s.configureValid()
	case stepSchedule:
		return ValidateDraft(s.draft) == nil
	}
	return false
}

func (s *wizardService) configureValid() bool {
	if s.draft.Title == "" || len(s.draft.Platforms) == 0 {
		return false
	}
	if rules.RequiresCaption(s.draft.Type) && s.draft.Caption == "" {
		return false
	}
	return true
}

func (s *wizardService) reset() {
	s.sm = nil
	s.draft = model.WizardDraft{}
	s.active = false
	s.editing = false
}
