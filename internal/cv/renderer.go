// Package cv turns a resolved CVDocument into a printable HTML page and PDF.
package cv

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/pdf"
)

//go:embed templates/*.html
var templateFS embed.FS

const defaultLayout = "two_column"

// Printer converts a full HTML document into PDF bytes.
type Printer interface {
	HTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Renderer struct {
	printer Printer
	layouts map[string]*template.Template
}

var _ domain.CVRenderer = (*Renderer)(nil)

func NewRenderer(printer Printer) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse cv templates: %w", err)
	}
	layouts := make(map[string]*template.Template)
	for _, t := range tmpl.Templates() {
		layouts[strings.TrimSuffix(t.Name(), ".html")] = t
	}
	return &Renderer{printer: printer, layouts: layouts}, nil
}

// RenderHTML executes the layout named by the template's layout_type,
// falling back to the two-column layout for unknown types.
func (r *Renderer) RenderHTML(doc *domain.CVDocument) (string, error) {
	layout, ok := r.layouts[doc.Template.LayoutType]
	if !ok {
		layout = r.layouts[defaultLayout]
	}
	var buf bytes.Buffer
	if err := layout.Execute(&buf, newView(doc)); err != nil {
		return "", fmt.Errorf("execute cv layout: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) Render(ctx context.Context, doc *domain.CVDocument) ([]byte, error) {
	html, err := r.RenderHTML(doc)
	if err != nil {
		return nil, err
	}
	raw, err := r.printer.HTMLToPDF(ctx, html)
	if err != nil {
		return nil, err
	}
	out, _, err := pdf.Finalize(raw, map[string]string{
		"Title":   "Lebenslauf " + doc.DisplayName,
		"Author":  doc.DisplayName,
		"Subject": doc.Headline,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
