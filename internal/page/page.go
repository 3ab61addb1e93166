// Package page wraps the map SVG in the dashboard HTML shell.
package page

import (
	"fmt"
	"html/template"
	"io"

	"go-hexmap-atlas/pkg/render"
	"go-hexmap-atlas/pkg/render/svg"
)

// Page is the data behind the HTML shell.
type Page struct {
	Title   string
	Heading string
	Scene   render.Scene
}

type view struct {
	Title   string
	Heading string
	Map     template.HTML
}

var tmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { background: #14141e; color: #f0f0f0; font-family: sans-serif; margin: 0; padding: 2rem; }
  .card { max-width: fit-content; margin: 0 auto; text-align: center; }
  .hex-outline { stroke-width: 0; }
  .hex-outline:hover { stroke-width: 2; }
</style>
</head>
<body>
<div class="card">
  <h1>{{.Title}}</h1>
  <h2>{{.Heading}}</h2>
  <div>{{.Map}}</div>
</div>
</body>
</html>
`))

// Render writes the HTML page to w. The SVG is produced by the svg package,
// which escapes cell names and colors, so it is embedded as trusted markup.
func Render(w io.Writer, p Page) error {
	opts := svg.DefaultOptions()
	opts.Standalone = false
	opts.Indent = 0

	markup, err := svg.String(p.Scene, opts)
	if err != nil {
		return err
	}

	v := view{
		Title:   p.Title,
		Heading: p.Heading,
		Map:     template.HTML(markup),
	}
	if err := tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
