package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed views/*.html
var viewsFS embed.FS

var pages = []string{"index", "detail", "edit", "new"}

// page is the data every view is executed with.
type page struct {
	Title   string
	Flash   string
	Banner  string
	ShowAll bool
	Errors  map[string]string
	Data    any
}

type renderer struct {
	templates map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	layout, err := template.New("layout.html").
		Option("missingkey=zero").
		ParseFS(viewsFS, "views/layout.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse layout")
	}
	r := &renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err = t.ParseFS(viewsFS, "views/"+name+".html"); err != nil {
			return nil, errors.Wrapf(err, "parse %s", name)
		}
		r.templates[name] = t
	}
	return r, nil
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return errors.Errorf("view %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
