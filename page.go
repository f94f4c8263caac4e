package mdtabs

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed assets/page.html.tmpl assets/mdtabs.css assets/mdtabs.js
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "assets/page.html.tmpl"))

// PageRequest configures WritePage.
type PageRequest struct {
	Title string
	// Body is rendered HTML, written verbatim.
	Body   string
	Config Config
}

type pageData struct {
	Title           string
	Body            template.HTML
	CSS             template.CSS
	Script          template.JS
	ActiveTabClass  string
	ActiveCodeClass string
}

// WritePage writes a standalone HTML document around a rendered body,
// including the stylesheet and the tab switching and copyCode script the
// generated markup expects.
func WritePage(w io.Writer, req PageRequest) error {
	css, err := assets.ReadFile("assets/mdtabs.css")
	if err != nil {
		return fmt.Errorf("page: read stylesheet: %w", err)
	}
	script, err := assets.ReadFile("assets/mdtabs.js")
	if err != nil {
		return fmt.Errorf("page: read script: %w", err)
	}
	cfg := req.Config.withDefaults()
	title := req.Title
	if title == "" {
		title = "mdtabs"
	}
	if err := pageTemplate.Execute(w, pageData{
		Title:           title,
		Body:            template.HTML(req.Body),
		CSS:             template.CSS(css),
		Script:          template.JS(script),
		ActiveTabClass:  cfg.ActiveTabClass,
		ActiveCodeClass: cfg.ActiveCodeClass,
	}); err != nil {
		return fmt.Errorf("page: execute template: %w", err)
	}
	return nil
}
