package web

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"

	"venue-booking-web/internal/domain/user"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Raw HTML in venue descriptions is dropped since WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// NewTemplates parses every page. Each page is a named template that pulls in
// the shared header and footer.
func NewTemplates() (*template.Template, error) {
	return template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"markdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"inr": func(amount float64) string {
			return "₹" + strconv.FormatFloat(amount, 'f', -1, 64)
		},
		"deref": func(s *string) string {
			if s == nil || *s == "" {
				return "–"
			}
			return *s
		},
		"roles": func() []user.Role {
			return user.Roles
		},
	}
}
