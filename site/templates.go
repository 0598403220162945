package site

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"log/slog"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFuncs = template.FuncMap{
	"icon": IconSVG,
	"date": func(v any) string {
		var millis int64
		switch t := v.(type) {
		case int64:
			millis = t
		case *int64:
			if t != nil {
				millis = *t
			}
		}
		if millis <= 0 {
			return ""
		}
		return time.UnixMilli(millis).UTC().Format("January 2, 2006")
	},
	"stars": func(rating int) string {
		if rating < 0 {
			rating = 0
		}
		if rating > 5 {
			rating = 5
		}
		return strings.Repeat("★", rating)
	},
}

func parseTemplates() *template.Template {
	return template.Must(template.New("site").Funcs(pageFuncs).ParseFS(templateFS, "templates/*.html"))
}

// render executes a page template. Failures mid-write can only be logged;
// the status line has already gone out.
func render(w http.ResponseWriter, tmpl *template.Template, name string, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("render template", slog.String("template", name), slog.Any("err", err))
	}
}
