package httphandler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds the parsed pages. It is safe for concurrent use.
type Templates struct {
	t *template.Template
}

func ParseTemplates() (Templates, error) {
	const op = "httphandler.ParseTemplates"

	t, err := template.New("base").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return Templates{}, fmt.Errorf("%s: %w", op, err)
	}
	return Templates{t}, nil
}

func (t Templates) render(w http.ResponseWriter, status int, name string, data any) {
	const op = "Templates.render"

	log := slog.With("op", op, "template", name)

	var buf bytes.Buffer
	if err := t.t.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error("template render failed", "err", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
