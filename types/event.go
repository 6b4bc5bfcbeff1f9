package types

import "time"

// SubmissionEvent is a WebSocket message announcing an accepted submission
type SubmissionEvent struct {
	FileName    string    `json:"fileName"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Season      string    `json:"season"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}
