package model

import "github.com/google/uuid"

type DraftSource string

const (
	SourceLibrary DraftSource = "library"
	SourceUpload  DraftSource = "upload"
)

func (s DraftSource) Valid() bool {
	return s == SourceLibrary || s == SourceUpload
}

// WizardDraft is the transient wizard state prior to commit. It is a
// superset of the post fields and is discarded on cancel.
type WizardDraft struct {
	PostID        *uuid.UUID        `json:"post_id,omitempty"` // set only in the edit flow
	Type          WizardContentType `json:"type"`
	Source        DraftSource       `json:"source,omitempty"`
	Title         string            `json:"title"`
	Caption       string            `json:"caption"`
	Platforms     []Platform        `json:"platforms"`
	ScheduledDate string            `json:"scheduled_date,omitempty"`
	ScheduledTime string            `json:"scheduled_time,omitempty"`
	Thumbnail     string            `json:"thumbnail,omitempty"`
}
