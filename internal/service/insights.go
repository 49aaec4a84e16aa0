package service

import (
	"github.com/PromoPilot/scheduler-service/internal/dto"
	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/PromoPilot/scheduler-service/internal/rules"
)

// insightsService exposes the static engagement tables. Read-only
// display data; it takes no part in scheduling correctness.
type insightsService struct{}

func newInsightsService() Insights {
	return &insightsService{}
}

func (s *insightsService) Heatmap(platform string) dto.HeatmapResponse {
	return dto.HeatmapResponse{
		Platform: platform,
		Scores:   rules.Heatmap(model.Platform(platform)),
	}
}

func (s *insightsService) Insights(platform string) dto.InsightsResponse {
	return dto.InsightsResponse{
		Platform: platform,
		Insight:  rules.InsightFor(model.Platform(platform)),
	}
}
