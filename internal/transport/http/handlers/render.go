package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
)

var templates map[string]*template.Template

// LoadTemplates parses every page template in dir against layout.html.
// Call once at startup, before any handler runs.
func LoadTemplates(dir string) error {
	layout := filepath.Join(dir, "layout.html")

	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}

	templates = make(map[string]*template.Template)
	for _, page := range pages {
		name := filepath.Base(page)
		if name == "layout.html" {
			continue
		}

		tmpl, err := template.ParseFiles(layout, page)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	if len(templates) == 0 {
		return fmt.Errorf("no page templates found in %s", dir)
	}
	return nil
}

func render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := templates[name]
	if !ok {
		log.Printf("ERROR render: template %s not loaded", name)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("ERROR render %s: %v", name, err)
	}
}
