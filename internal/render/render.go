package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

// Renderer executes the embedded landing page templates.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	t, err := template.New("landing").Funcs(template.FuncMap{
		"truncate": Truncate,
	}).ParseFS(templateFS, "templates/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: t}, nil
}

// Page renders the full landing page. The output is buffered so a template
// error never leaves a half-written response.
func (r *Renderer) Page(w io.Writer, p Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "base", p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
