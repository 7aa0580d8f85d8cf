// Package exports turns a rendered document layout into a downloadable PDF.
package exports

import "context"

// Renderer converts self-contained HTML into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}
