package imports

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

const maxUploadBytes = 5 << 20

// Handler exposes the text-extraction endpoint used to prefill the form
// from an existing resume document.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/imports/text", h.extractText)
}

func (h *Handler) extractText(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file field is required", nil)
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds the 5MB limit", nil)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read upload", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds the 5MB limit", nil)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	text, err := Text(c.Request.Context(), data, mimeType, header.Filename)
	if err != nil {
		var unsupported ErrUnsupportedType
		if errors.As(err, &unsupported) {
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "failed to extract text", nil)
		return
	}

	text = strings.TrimSpace(text)
	respond.OK(c, gin.H{
		"text":    text,
		"prefill": Guess(text),
	})
}
