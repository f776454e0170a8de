package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/nuagestudio/previewd/internal/config"
)

type HomeHandler struct {
	cfg *config.Config
}

func NewHomeHandler(cfg *config.Config) *HomeHandler {
	return &HomeHandler{cfg: cfg}
}

// HomePage is an informational landing page; the service has no
// human-facing content of its own.
func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>%s - Preview Service</title></head>
<body>
<h1>%s</h1>
<p>Service de prévisualisation pour les robots des réseaux sociaux.</p>
<p>Site public : <a href="%s">%s</a></p>
</body>
</html>
`, html.EscapeString(h.cfg.AppName), html.EscapeString(h.cfg.AppName),
		html.EscapeString(h.cfg.SiteURL), html.EscapeString(h.cfg.SiteURL))
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	NotFound(w)
}
