package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/InQaaaaGit/trunc_web/internal/models"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	landingTemplate   = "landing.html"
	dashboardTemplate = "dashboard.html"
)

type breakdownBlock struct {
	Title  string
	Shares []models.Share
}

type pageTemplates struct {
	set *template.Template
}

func mustParseTemplates() *pageTemplates {
	funcs := template.FuncMap{
		"percent": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"breakdownBlock": func(title string, shares []models.Share) breakdownBlock {
			return breakdownBlock{Title: title, Shares: shares}
		},
	}
	return &pageTemplates{
		set: template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
	}
}

// render выполняет шаблон в буфер, чтобы ошибка шаблона не оставила полуответ
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.set.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Error rendering template", zap.String("template", name), zap.Error(err))
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("Error writing page", zap.String("template", name), zap.Error(err))
	}
}
