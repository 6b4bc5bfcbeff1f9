package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tokusound/services"
	"tokusound/types"
	"tokusound/websocket"
)

// SubmitHandler handles the sound submission endpoint
type SubmitHandler struct {
	submissions services.SubmissionService
	hub         websocket.Hub
}

// NewSubmitHandler creates a new submission handler
func NewSubmitHandler(s services.SubmissionService, hub websocket.Hub) *SubmitHandler {
	return &SubmitHandler{
		submissions: s,
		hub:         hub,
	}
}

// SaveForm handles POST /api/save-form: a multipart form with the sound
// metadata, a required audio part and an optional image part. Responds
// {success, fileName} on success, {success:false, error} otherwise.
func (h *SubmitHandler) SaveForm(c *gin.Context) {
	var form types.SoundForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, types.SubmitResponse{
			Success: false,
			Error:   "invalid form data: " + err.Error(),
		})
		return
	}

	record, fileName, err := h.submissions.Submit(&form)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr), errors.Is(err, services.ErrUploadRejected):
			c.JSON(http.StatusBadRequest, types.SubmitResponse{
				Success: false,
				Error:   err.Error(),
			})
		default:
			logrus.WithError(err).Error("submission failed")
			c.JSON(http.StatusInternalServerError, types.SubmitResponse{
				Success: false,
				Error:   "failed to save form data: " + err.Error(),
			})
		}
		return
	}

	if h.hub != nil {
		h.hub.BroadcastSubmission(types.SubmissionEvent{
			FileName:    fileName,
			Title:       record.Title,
			Category:    record.Category,
			Season:      record.Season,
			Message:     "new sound submitted",
			SubmittedAt: record.SubmittedAt,
		})
	}

	c.JSON(http.StatusOK, types.SubmitResponse{
		Success:  true,
		FileName: fileName,
	})
}
