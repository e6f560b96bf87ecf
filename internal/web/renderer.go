package web

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin/render"
)

// HTMLRenderer keeps one template set per page so pages can share the
// base layout without clashing block names.
type HTMLRenderer struct {
	Templates map[string]*template.Template
}

var pageFiles = map[string][]string{
	"home.html":           {"home.html", "base.html"},
	"detail.html":         {"detail.html", "base.html"},
	"checkout.html":       {"checkout.html", "base.html"},
	"confirmation.html":   {"confirmation.html", "base.html"},
	"error.html":          {"error.html", "base.html"},
	"login.html":          {"login.html", "base.html"},
	"dashboard.html":      {"dashboard.html", "base.html"},
	"admin_products.html": {"admin_products.html", "base.html"},
	"product_form.html":   {"product_form.html", "base.html"},
	"admin_orders.html":   {"admin_orders.html", "base.html"},
}

// LoadTemplates parses every page set from dir.
func LoadTemplates(dir string) (*HTMLRenderer, error) {
	templates := make(map[string]*template.Template, len(pageFiles))
	for name, files := range pageFiles {
		paths := make([]string, 0, len(files))
		for _, f := range files {
			paths = append(paths, filepath.Join(dir, f))
		}
		tmpl, err := template.ParseFiles(paths...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &HTMLRenderer{Templates: templates}, nil
}

// Instance picks the template set for the requested page.
func (r *HTMLRenderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.Templates[name],
		Data:     data,
	}
}

// Render writes the HTTP response.
func (r *HTMLRenderer) Render(w http.ResponseWriter, code int, data ...any) error {
	name := data[0].(string)
	instance := r.Instance(name, data[1])
	return instance.Render(w)
}
