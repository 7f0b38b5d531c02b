package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-insights/internal/api/middleware"
	"meeting-insights/internal/api/v1/dto"
	"meeting-insights/internal/api/v1/services"
)

// EmailSentMessage is returned after a successful delivery
const EmailSentMessage = "Email sent successfully!"

// NotificationHandler handles email delivery of results
type NotificationHandler struct {
	service services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		service: service,
	}
}

// Email handles POST /api/v1/insights/email
func (h *NotificationHandler) Email(c *gin.Context) {
	var payload dto.InsightsPayload
	if err := middleware.ValidateRequest(c, &payload); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := h.service.Email(c.Request.Context(), payload.Result()); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EmailResponse{Success: true, Message: EmailSentMessage})
}
