package dto

type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required"`
	Type          string   `json:"type" binding:"required"`
	Caption       string   `json:"caption"`
	Platforms     []string `json:"platforms" binding:"required"`
	ScheduledDate string   `json:"scheduled_date"`
	ScheduledTime string   `json:"scheduled_time"`
	Thumbnail     string   `json:"thumbnail"`
}

type UpdatePostRequest struct {
	Title         *string   `json:"title"`
	Caption       *string   `json:"caption"`
	Platforms     *[]string `json:"platforms"`
	ScheduledDate *string   `json:"scheduled_date"`
	ScheduledTime *string   `json:"scheduled_time"`
	Thumbnail     *string   `json:"thumbnail"`
}
