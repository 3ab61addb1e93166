// Package svg writes a render.Scene as an SVG document.
//
// Each placement becomes a translated group holding a nested <svg> whose
// view box is the hexagon's local coordinate space:
//
//	<svg width height style>
//	  <g data-key="row-col" transform="translate(x, y)">
//	    <svg width height viewBox="0 0 2s 2s">
//	      <polygon points fill/>            fill
//	      <text x y font-size ...>name</text>
//	      <polygon class points fill="transparent" stroke/>   hover outline
//	    </svg>
//	  </g>
//	</svg>
package svg

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/beevik/etree"

	"go-hexmap-atlas/pkg/render"
	"go-hexmap-atlas/pkg/utils"
)

const namespace = "http://www.w3.org/2000/svg"

// Options controls document output.
type Options struct {
	// Standalone adds the XML declaration and namespace needed for a .svg
	// file. Inline SVG inside HTML does not need either.
	Standalone bool
	// Indent is the number of spaces per nesting level; 0 writes one line.
	Indent int
	// Style is the style attribute of the outer element.
	Style string
}

// DefaultOptions returns options for a standalone file.
func DefaultOptions() Options {
	return Options{
		Standalone: true,
		Indent:     2,
		Style:      "margin: auto; display: block; border: solid thin white",
	}
}

// Document builds the element tree for s.
func Document(s render.Scene, opts Options) *etree.Document {
	doc := etree.NewDocument()
	if opts.Standalone {
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	}

	root := doc.CreateElement("svg")
	if opts.Standalone {
		root.CreateAttr("xmlns", namespace)
	}
	root.CreateAttr("width", num(s.Width))
	root.CreateAttr("height", num(s.Height))
	if opts.Style != "" {
		root.CreateAttr("style", opts.Style)
	}

	for _, it := range s.Items {
		writePlacement(root, it)
	}

	if opts.Indent > 0 {
		doc.Indent(opts.Indent)
	}
	return doc
}

func writePlacement(parent *etree.Element, it render.Placement) {
	g := parent.CreateElement("g")
	g.CreateAttr("data-key", it.Key)
	g.CreateAttr("transform", fmt.Sprintf("translate(%s, %s)", num(it.X), num(it.Y)))

	h := it.Hexagon
	box := g.CreateElement("svg")
	box.CreateAttr("width", num(h.Width))
	box.CreateAttr("height", num(h.Height))
	box.CreateAttr("viewBox", fmt.Sprintf("0 0 %s %s", num(h.ViewBox), num(h.ViewBox)))

	fill := box.CreateElement("polygon")
	fill.CreateAttr("points", points(h.Points))
	fill.CreateAttr("fill", h.Fill)

	text := box.CreateElement("text")
	text.CreateAttr("x", num(h.Label.X))
	text.CreateAttr("y", num(h.Label.Y))
	text.CreateAttr("font-size", num(h.Label.FontSize))
	text.CreateAttr("text-anchor", "middle")
	text.CreateAttr("fill", h.Label.Fill)
	text.SetText(h.Label.Text)

	outline := box.CreateElement("polygon")
	if h.Outline.Class != "" {
		outline.CreateAttr("class", h.Outline.Class)
	}
	outline.CreateAttr("points", points(h.Outline.Points))
	outline.CreateAttr("fill", h.Outline.Fill)
	outline.CreateAttr("stroke", h.Outline.Stroke)
}

// Encode writes s to w.
func Encode(w io.Writer, s render.Scene, opts Options) error {
	if _, err := Document(s, opts).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

// String renders s to a string.
func String(s render.Scene, opts Options) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, s, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func points(pts []image.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func num(f float64) string {
	return utils.FormatFloat(f)
}
