package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Template helper functions
var funcMap = template.FuncMap{
	"FormatDateTime": FormatDateTime,
}

// FormatDateTime formats a time.Time into a readable string for templates.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 2, 2006 at 3:04 PM")
}

// Renderer holds the parsed page templates. Every page is parsed together
// with layout.html; the key is the page file name, e.g. "login.html".
type Renderer struct {
	templates map[string]*template.Template
}

// LoadTemplates parses all page templates in dir against the shared layout.
// It is called once at startup.
func LoadTemplates(dir string) (*Renderer, error) {
	layoutFile := filepath.Join(dir, "layout.html")
	if _, err := os.Stat(layoutFile); err != nil {
		return nil, fmt.Errorf("layout.html not found in %s: %w", dir, err)
	}

	pageFiles, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("globbing templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, pageFile := range pageFiles {
		if pageFile == layoutFile {
			continue
		}
		name := filepath.Base(pageFile)
		tmpl, err := template.New(name).Funcs(funcMap).ParseFiles(layoutFile, pageFile)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	if len(r.templates) == 0 {
		return nil, fmt.Errorf("no page templates found in %s", dir)
	}
	return r, nil
}

// Render executes the named page template into the response. The page is
// rendered into a buffer first so a template failure can still produce a
// clean 500 instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
