package service

import "errors"

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrTitleRequired      = errors.New("title must not be empty")
	ErrPlatformsRequired  = errors.New("at least one platform must be selected")
	ErrCaptionRequired    = errors.New("a caption is required for this content type")
	ErrInvalidContentType = errors.New("unknown content type")
	ErrInvalidPlatform    = errors.New("unknown platform")
	ErrPlatformNotAllowed = errors.New("platform is not allowed for this content type")
	ErrInvalidSource      = errors.New("source must be \"library\" or \"upload\"")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime        = errors.New("time must be in HH:MM format")

	ErrDragInProgress   = errors.New("another drag session is already active")
	ErrNoDragInProgress = errors.New("no drag session is active")

	ErrWizardNotStarted = errors.New("no wizard session is active")
	ErrStepBlocked      = errors.New("the current step is not valid yet")
	ErrNotAtFinalStep   = errors.New("submit is only available at the schedule step")
)
