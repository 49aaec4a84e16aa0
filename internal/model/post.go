package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	Type          ContentType `json:"type"`
	Platforms     []Platform  `json:"platforms"`
	ScheduledDate string      `json:"scheduled_date,omitempty"` // YYYY-MM-DD; empty means unscheduled
	ScheduledTime string      `json:"scheduled_time,omitempty"` // HH:MM; set whenever ScheduledDate is set
	Thumbnail     string      `json:"thumbnail,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (p Post) Scheduled() bool {
	return p.ScheduledDate != ""
}

type PostPatch struct {
	Title         *string
	Content       *string
	Type          *ContentType
	Platforms     *[]Platform
	ScheduledDate *string
	ScheduledTime *string
	Thumbnail     *string
}

type CalendarDay struct {
	Date           string `json:"date"`
	IsCurrentMonth bool   `json:"is_current_month"`
	Posts          []Post `json:"posts"`
}
