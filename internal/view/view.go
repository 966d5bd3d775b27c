// Package view renders the HTML pages.  Templates are embedded in the
// binary; each page is parsed together with the layout and the partials
// so pages can share block names without clashing.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/flash"
)

//go:embed templates
var files embed.FS

const layout = "main.html"

// Page is the value every template is executed with.  Flashes are rendered
// by the layout; Data is what the page itself reads.
type Page struct {
	Title   string
	Flashes []flash.Message
	Data    any
}

// Renderer implements echo.Renderer over the embedded templates.  Names
// are paths without extension, e.g. "pages/show_venue".
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page.  It fails when any template does not parse.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, dir := range []string{"pages", "forms", "errors"} {
		entries, err := fs.ReadDir(files, "templates/"+dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
				continue
			}
			file := path.Join("templates", dir, e.Name())
			t, err := template.New(layout).Funcs(funcs).ParseFS(files,
				"templates/layouts/"+layout, "templates/partials/*.html", file)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			r.pages[dir+"/"+strings.TrimSuffix(e.Name(), ".html")] = t
		}
	}
	return r, nil
}

// Has reports whether a page called name exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Render executes the layout with the named page's blocks.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: no template %q", name)
	}
	return t.ExecuteTemplate(w, layout, data)
}
