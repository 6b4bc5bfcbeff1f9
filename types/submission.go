package types

import (
	"mime/multipart"
	"strings"
	"time"
)

// SoundForm is the multipart submission form for a new sound.
// Tags travel as a single comma-joined string and are decoded at this
// boundary; everything past the form binding works with the slice.
type SoundForm struct {
	Title       string                `form:"title"`
	Category    string                `form:"category"`
	Season      string                `form:"season"`
	Tags        string                `form:"tags"`
	Description string                `form:"description"`
	Source      string                `form:"source"`
	WikiLink    string                `form:"wikiLink"`
	Audio       *multipart.FileHeader `form:"audio"`
	Image       *multipart.FileHeader `form:"image"`
}

// TagList decodes the comma-joined tags field. Blank entries are dropped.
func (f *SoundForm) TagList() []string {
	tags := []string{}
	for _, t := range strings.Split(f.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// SubmissionRecord is the write-only JSON document persisted per submission.
// It is an outbox entry: written once, never read back by this service.
type SubmissionRecord struct {
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Season        string    `json:"season"`
	Tags          []string  `json:"tags"`
	Description   string    `json:"description,omitempty"`
	Source        string    `json:"source,omitempty"`
	WikiLink      string    `json:"wikiLink,omitempty"`
	AudioFileName string    `json:"audioFileName"`
	AudioFilePath string    `json:"audioFilePath"`
	ImageFileName string    `json:"imageFileName,omitempty"`
	ThumbnailPath string    `json:"thumbnailPath,omitempty"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// SubmitResponse is the wire response of the submission endpoint
type SubmitResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName,omitempty"`
	Error    string `json:"error,omitempty"`
}
