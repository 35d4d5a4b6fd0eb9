package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	activityapp "github.com/stockroom/backend/internal/application/activity"
)

// ActivityHandler serves the dashboard activity feed
type ActivityHandler struct {
	BaseHandler
	activityService *activityapp.Service
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService *activityapp.Service) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// RegisterRoutes registers activity routes on the API group
func (h *ActivityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/activities", h.ListRecent)
}

// ListRecent returns the most recent activity entries, newest first
func (h *ActivityHandler) ListRecent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	activities, err := h.activityService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, activities)
}
