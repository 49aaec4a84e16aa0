package dto

import (
	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/PromoPilot/scheduler-service/internal/rules"
)

type CalendarResponse struct {
	Pivot     string              `json:"pivot"` // YYYY-MM
	Days      []model.CalendarDay `json:"days"`
	CanGoPrev bool                `json:"can_go_prev"`
	CanGoNext bool                `json:"can_go_next"`
}

type DragStateResponse struct {
	State     string `json:"state"`
	PostID    string `json:"post_id,omitempty"`
	HoverDate string `json:"hover_date,omitempty"`
}

type WizardStateResponse struct {
	Active           bool               `json:"active"`
	Editing          bool               `json:"editing"`
	Step             int                `json:"step"`
	StepName         string             `json:"step_name,omitempty"`
	Draft            *model.WizardDraft `json:"draft,omitempty"`
	StepValid        bool               `json:"step_valid"`
	SubmitValid      bool               `json:"submit_valid"`
	AllowedPlatforms []model.Platform   `json:"allowed_platforms,omitempty"`
	RequiresCaption  bool               `json:"requires_caption"`
}

type HeatmapResponse struct {
	Platform string     `json:"platform"`
	Scores   [7][24]int `json:"scores"` // Sunday-first days, 0..23 hours
}

type InsightsResponse struct {
	Platform string        `json:"platform"`
	Insight  rules.Insight `json:"insight"`
}
