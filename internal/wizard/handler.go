package wizard

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resume"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const maxImportSize = 1 << 20 // 1MB

// Handler wires resume and wizard routes to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume and wizard routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.getResume)
	rg.PATCH("/resume", h.patchResume)
	rg.POST("/resume/:section/items", h.addItem)
	rg.DELETE("/resume/:section/items/:id", h.removeItem)
	rg.POST("/resume/clear", h.clear)
	rg.POST("/resume/import", h.importResume)

	rg.GET("/wizard", h.getState)
	rg.POST("/wizard/next", h.next)
	rg.POST("/wizard/back", h.back)
	rg.POST("/wizard/jump", h.jump)
}

func (h *Handler) getResume(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	data, err := h.Svc.Resume(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		return
	}
	respond.OK(c, data)
}

func (h *Handler) patchResume(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	var patch resume.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	data, err := h.Svc.Update(c.Request.Context(), sessionID, patch)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update resume", nil)
		return
	}
	respond.OK(c, data)
}

type addItemRequest struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

func (h *Handler) addItem(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	section := c.Param("section")

	var req addItemRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	data, id, created, err := h.Svc.AddItem(c.Request.Context(), sessionID, section, req.Name, req.Level)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownSection):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to add item", nil)
		}
		return
	}

	status := http.StatusCreated
	if !created {
		// Duplicate skill name: list unchanged, not an error.
		status = http.StatusOK
	}
	respond.JSON(c, status, gin.H{"id": id, "resume": data})
}

func (h *Handler) removeItem(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	data, err := h.Svc.RemoveItem(c.Request.Context(), sessionID, c.Param("section"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownSection):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to remove item", nil)
		}
		return
	}
	respond.OK(c, data)
}

func (h *Handler) clear(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	data, err := h.Svc.Clear(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear resume", nil)
		return
	}
	respond.OK(c, data)
}

func (h *Handler) importResume(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read body", nil)
		return
	}

	data, err := h.Svc.Import(c.Request.Context(), sessionID, raw)
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, data)
}

func (h *Handler) getState(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	state, err := h.Svc.State(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load wizard state", nil)
		return
	}
	respond.OK(c, state)
}

func (h *Handler) next(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	state, fieldErrs, err := h.Svc.Next(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to advance wizard", nil)
		return
	}
	if len(fieldErrs) > 0 {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "step validation failed", fieldErrs)
		return
	}
	respond.OK(c, state)
}

func (h *Handler) back(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	state, err := h.Svc.Back(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to step back", nil)
		return
	}
	respond.OK(c, state)
}

type jumpRequest struct {
	Step string `json:"step"`
}

func (h *Handler) jump(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	var req jumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	target, err := ParseStep(req.Step)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	state, err := h.Svc.Jump(c.Request.Context(), sessionID, target)
	if err != nil {
		switch {
		case errors.Is(err, ErrJumpFromDataStep), errors.Is(err, ErrJumpTarget):
			respond.Error(c, http.StatusConflict, "invalid_transition", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to jump", nil)
		}
		return
	}
	respond.OK(c, state)
}
