// Package templates manages text/template rendering for report output.
package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"
)

// Renderer interface for template rendering (for dependency injection)
type Renderer interface {
	ExecuteTemplate(name string, data any) (string, error)
	TemplateExists(name string) bool
}

// Manager holds parsed templates from an embedded filesystem.
type Manager struct {
	templates *template.Template
}

// GetDefaultFuncMap returns common template helper functions.
func GetDefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"printf": fmt.Sprintf,
		"upper":  strings.ToUpper,
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
		"repeat": strings.Repeat,
		"add": func(a, b int) int {
			return a + b
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"round1": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
		"round3": func(v float64) string {
			return fmt.Sprintf("%.3f", v)
		},
		"comma": func(n int) string {
			s := fmt.Sprintf("%d", n)
			if len(s) <= 3 {
				return s
			}
			var b strings.Builder
			lead := len(s) % 3
			if lead > 0 {
				b.WriteString(s[:lead])
			}
			for i := lead; i < len(s); i += 3 {
				if b.Len() > 0 {
					b.WriteByte(',')
				}
				b.WriteString(s[i : i+3])
			}
			return b.String()
		},
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
	}
}

// NewManager parses all *.tmpl files from the given filesystem.
func NewManager(fsys fs.FS) (*Manager, error) {
	tmpl, err := template.New("root").Funcs(GetDefaultFuncMap()).ParseFS(fsys, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if len(tmpl.Templates()) <= 1 { // "root" template doesn't count
		return nil, fmt.Errorf("no templates found")
	}

	return &Manager{templates: tmpl}, nil
}

// ExecuteTemplate renders template with data.
func (m *Manager) ExecuteTemplate(name string, data any) (string, error) {
	tmpl := m.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// TemplateExists checks if template exists.
func (m *Manager) TemplateExists(name string) bool {
	return m.templates.Lookup(name) != nil
}
