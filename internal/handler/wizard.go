package handler

import (
	"errors"
	"net/http"

	"github.com/PromoPilot/scheduler-service/internal/dto"
	"github.com/PromoPilot/scheduler-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) wizardState(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Wizard.State(c.Request.Context()))
}

func (h *Handler) wizardStart(c *gin.Context) {
	h.services.Wizard.StartCreate(c.Request.Context())
	c.JSON(http.StatusOK, h.services.Wizard.State(c.Request.Context()))
}

func (h *Handler) wizardEdit(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, errInvalidPostID.Error()))
		return
	}

	if err := h.services.Wizard.StartEdit(c.Request.Context(), postID); err != nil {
		c.JSON(http.StatusNotFound, dto.NewStatus(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.services.Wizard.State(c.Request.Context()))
}

func (h *Handler) wizardUpdateDraft(c *gin.Context) {
	var input dto.WizardDraftRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewStatus(false, err.Error()))
		return
	}

	if err := h.services.Wizard.UpdateDraft(c.Request.Context(), input); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrWizardNotStarted) {
			status = http.StatusConflict
		}
		c.JSON(status, dto.NewStatus(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.services.Wizard.State(c.Request.Context()))
}

func (h *Handler) wizardNext(c *gin.Context) {
	if err := h.services.Wizard.Next(c.Request.Context()); err != nil {
		c.JSON(http.StatusConflict, dto.NewStatus(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.services.Wizard.State(c.Request.Context()))
}

func (h *Handler) wizardBack(c *gin.Context) {
	if err := h.services.Wizard.Back(c.Request.Context()); err != nil {
		c.JSON(http.StatusConflict, dto.NewStatus(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.services.Wizard.State(c.Request.Context()))
}

func (h *Handler) wizardSubmit(c *gin.Context) {
	post, err := h.services.Wizard.Submit(c.Request.Context())
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, service.ErrPostNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, dto.NewStatus(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *post)
}

func (h *Handler) wizardCancel(c *gin.Context) {
	h.services.Wizard.Cancel(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewStatus(true, "wizard cancelled"))
}
