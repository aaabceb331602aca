package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"crystalis-cms/internal/service"
)

// DashboardHandler expone los agregados que muestra el dashboard del panel.
type DashboardHandler struct {
	logger  *zap.Logger
	content *service.ContentService
}

func NewDashboardHandler(logger *zap.Logger, content *service.ContentService) *DashboardHandler {
	return &DashboardHandler{
		logger:  logger,
		content: content,
	}
}

// Stats maneja GET /admin/dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.content.DashboardStats(c.Request.Context())
	if err != nil {
		h.logger.Error("dashboard stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// Activities maneja GET /admin/dashboard/activities.
func (h *DashboardHandler) Activities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	activities, err := h.content.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("dashboard activities failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load activities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": activities})
}
