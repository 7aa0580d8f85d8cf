package templates

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/wizard"
)

// Handler serves the template gallery and the live preview.
type Handler struct {
	wizard *wizard.Service
}

func NewHandler(wiz *wizard.Service) *Handler {
	return &Handler{wizard: wiz}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
	rg.GET("/templates/:id/preview", h.preview)
}

type galleryItem struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	Layout     Layout `json:"layout"`
	Accent     string `json:"accent"`
	Exportable bool   `json:"exportable"`
}

func (h *Handler) list(c *gin.Context) {
	items := make([]galleryItem, 0, len(registry))
	for _, t := range All() {
		items = append(items, galleryItem{
			ID:         t.ID,
			Name:       t.Name,
			Layout:     t.Screen.Layout,
			Accent:     t.Screen.Accent,
			Exportable: t.Exportable(),
		})
	}
	respond.OK(c, gin.H{"templates": items})
}

// preview renders the session's current resume with the requested template
// and returns the markup as-is for embedding.
func (h *Handler) preview(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	id := ID(c.Param("id"))

	data, err := h.wizard.Resume(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		return
	}

	html, err := RenderScreen(id, data.Normalized())
	if err != nil {
		var unknown ErrUnknownTemplate
		if errors.As(err, &unknown) {
			respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render preview", nil)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
