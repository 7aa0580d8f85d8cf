package exports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/templates"
	"resume-builder/internal/wizard"
)

// Handler exposes the PDF download endpoint.
type Handler struct {
	svc    *Service
	wizard *wizard.Service
}

func NewHandler(svc *Service, wiz *wizard.Service) *Handler {
	return &Handler{svc: svc, wizard: wiz}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/exports/:id", h.export)
}

func (h *Handler) export(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	id := templates.ID(c.Param("id"))

	data, err := h.wizard.Resume(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		return
	}
	// Settle any debounced save so the stored snapshot matches the print.
	h.wizard.Flush(sessionID)

	res, err := h.svc.Export(c.Request.Context(), sessionID, id, data)
	if err != nil {
		var unknown templates.ErrUnknownTemplate
		var notExportable templates.ErrNotExportable
		switch {
		case errors.As(err, &unknown):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
		case errors.As(err, &notExportable):
			respond.Error(c, http.StatusUnprocessableEntity, "not_exportable", err.Error(), nil)
		case errors.Is(err, ErrExportBusy):
			respond.Error(c, http.StatusConflict, "export_in_progress", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to render pdf", nil)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+res.FileName+`"`)
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}
