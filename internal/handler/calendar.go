package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) calendarGrid(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Calendar.Grid(c.Request.Context()))
}

// calendarNext moves the pivot one month forward. Navigation past the
// window is a no-op returning the unchanged grid.
func (h *Handler) calendarNext(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Calendar.Next(c.Request.Context()))
}

func (h *Handler) calendarPrev(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Calendar.Prev(c.Request.Context()))
}

func (h *Handler) insightsHeatmap(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Insights.Heatmap(c.Param("platform")))
}

func (h *Handler) insightsGet(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Insights.Insights(c.Param("platform")))
}
