package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"opsdesk/internal/domain/dashboard"
)

// DashboardHandler handles HTTP requests for dashboard metrics.
type DashboardHandler struct {
	*BaseHandler
	service *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(base *BaseHandler, service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, service: service}
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), time.Now())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, stats)
}

// Recent handles GET /dashboard/recent-activity.
func (h *DashboardHandler) Recent(c *gin.Context) {
	activities, err := h.service.Recent(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, activities)
}
