package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/PromoPilot/scheduler-service/internal/dto"
	"github.com/PromoPilot/scheduler-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) postsCreate(c *gin.Context) {
	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsGetAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Post.FindAll(c.Request.Context()))
}

func (h *Handler) postsGetScheduled(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Post.FindScheduled(c.Request.Context()))
}

func (h *Handler) postsGetUnscheduled(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Post.FindUnscheduled(c.Request.Context()))
}

func (h *Handler) postsUpdate(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, errInvalidPostID.Error()))
		return
	}

	var input dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, err.Error()))
		return
	}

	updatedPost, err := h.services.Post.Update(c.Request.Context(), postID, input)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.NewStatus(false, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, *updatedPost)
}

func (h *Handler) postsDelete(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, errInvalidPostID.Error()))
		return
	}

	h.services.Post.Delete(c.Request.Context(), postID)

	c.JSON(http.StatusOK, dto.NewStatus(true, "deleted"))
}

func parsePostID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Param("postID")))
}
