package dto

type DragStartRequest struct {
	PostID string `json:"post_id" binding:"required"`
}

type DragOverRequest struct {
	Date string `json:"date" binding:"required"`
}

// DragDropRequest carries the drop target. An empty date means the
// drag was released outside any droppable cell.
type DragDropRequest struct {
	Date string `json:"date"`
}

type WizardDraftRequest struct {
	Type          *string   `json:"type"`
	Source        *string   `json:"source"`
	Title         *string   `json:"title"`
	Caption       *string   `json:"caption"`
	Platforms     *[]string `json:"platforms"`
	ScheduledDate *string   `json:"scheduled_date"`
	ScheduledTime *string   `json:"scheduled_time"`
	Thumbnail     *string   `json:"thumbnail"`
}
