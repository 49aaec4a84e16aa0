package handler

import (
	"errors"
	"net/http"

	"github.com/PromoPilot/scheduler-service/internal/dto"
	"github.com/PromoPilot/scheduler-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) dragState(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Drag.State(c.Request.Context()))
}

func (h *Handler) dragStart(c *gin.Context) {
	var input dto.DragStartRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, err.Error()))
		return
	}

	postID, err := uuid.Parse(input.PostID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, errInvalidPostID.Error()))
		return
	}

	if err := h.services.Drag.Start(c.Request.Context(), postID); err != nil {
		status := http.StatusNotFound
		if errors.Is(err, service.ErrDragInProgress) {
			status = http.StatusConflict
		}
		c.JSON(status, dto.NewStatus(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.services.Drag.State(c.Request.Context()))
}

func (h *Handler) dragOver(c *gin.Context) {
	var input dto.DragOverRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, err.Error()))
		return
	}

	if err := h.services.Drag.Over(c.Request.Context(), input.Date); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrNoDragInProgress) {
			status = http.StatusConflict
		}
		c.JSON(status, dto.NewStatus(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.services.Drag.State(c.Request.Context()))
}

func (h *Handler) dragDrop(c *gin.Context) {
	var input dto.DragDropRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, err.Error()))
		return
	}

	movedPost, err := h.services.Drag.Drop(c.Request.Context(), input.Date)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, service.ErrNoDragInProgress):
			status = http.StatusConflict
		case errors.Is(err, service.ErrPostNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, dto.NewStatus(false, err.Error()))
		return
	}

	if movedPost == nil {
		// released outside any droppable cell
		c.JSON(http.StatusOK, dto.NewStatus(true, "drop discarded"))
		return
	}

	c.JSON(http.StatusOK, *movedPost)
}

func (h *Handler) dragCancel(c *gin.Context) {
	if err := h.services.Drag.Cancel(c.Request.Context()); err != nil {
		c.JSON(http.StatusConflict, dto.NewStatus(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewStatus(true, "drag cancelled"))
}
