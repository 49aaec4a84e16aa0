package dto

import "time"

// StatusResponse is the envelope for outcomes that carry no entity:
// refused actions, idempotent deletes, discarded drops.
type StatusResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewStatus(ok bool, details string) StatusResponse {
	return StatusResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}
