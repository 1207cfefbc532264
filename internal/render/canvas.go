package render

import (
	"fmt"

	"github.com/vere-app/vere/internal/domain/profile"
)

// canvasPage renders the free-form absolute canvas. It bypasses named
// layouts and most theme treatment; elements are placed exactly where
// the author put them. Unknown element types are skipped.
func canvasPage(p profile.Profile) *Node {
	d := p.Data

	canvas := el("div", "profile-page", "layout-canvas").
		styles(backgroundStyles(d, DefaultPersonalBg)).
		style("position", "relative").
		style("min-height", "100vh").
		style("overflow", "hidden")
	if d.FontFamily != "" {
		canvas.style("font-family", d.FontFamily)
	}

	for _, element := range d.VereElements {
		canvas.add(canvasElement(element))
	}

	return canvas.add(audioControl(d))
}

func canvasElement(element profile.VereElement) *Node {
	var node *Node

	switch element.Type {
	case "text":
		node = el("div", "canvas-text").text(element.Text)
		if element.Color != "" {
			node.style("color", element.Color)
		}
		if element.FontSize != "" {
			node.style("font-size", element.FontSize)
		}
	case "image":
		if element.ImageURL == "" {
			return nil
		}
		node = el("img", "canvas-image").
			attr("src", element.ImageURL).
			style("object-fit", "cover")
	case "shape":
		node = el("div", "canvas-shape")
		if element.Color != "" {
			node.style("background-color", element.Color)
		}
	default:
		return nil
	}

	return node.
		attr("data-element-id", element.ID).
		style("position", "absolute").
		style("left", px(element.X)).
		style("top", px(element.Y)).
		style("width", px(element.W)).
		style("height", px(element.H))
}

func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
