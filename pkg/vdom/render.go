package vdom

import (
	"fmt"
	"html"
	"io"
	"slices"
	"strings"
)

// maxRenderDepth bounds component nesting during serialization. Element and
// fragment nesting does not count.
const maxRenderDepth = 256

// ErrRenderDepth is returned when components nest deeper than the renderer
// allows, usually because a component renders itself.
var ErrRenderDepth = fmt.Errorf("vdom: render depth exceeds %d", maxRenderDepth)

// htmlWriter serializes a VNode tree to HTML.
type htmlWriter struct {
	w   io.Writer
	err error
}

// RenderHTML writes the HTML form of node to w.
// A nil node writes nothing. Nil children are skipped.
func RenderHTML(w io.Writer, node *VNode) error {
	hw := &htmlWriter{w: w}
	hw.node(node, 0)
	return hw.err
}

// RenderString returns the HTML form of node.
func RenderString(node *VNode) (string, error) {
	var b strings.Builder
	if err := RenderHTML(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// write helper that tracks errors
func (h *htmlWriter) write(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) node(node *VNode, depth int) {
	if node == nil || h.err != nil {
		return
	}

	switch node.Kind {
	case KindText:
		h.write(html.EscapeString(node.Text))

	case KindRaw:
		h.write(node.Text)

	case KindElement:
		h.element(node, depth)

	case KindFragment:
		for _, child := range node.Children {
			h.node(child, depth)
		}

	case KindComponent:
		if depth >= maxRenderDepth {
			h.err = ErrRenderDepth
			return
		}
		if node.Comp != nil {
			h.node(node.Comp.Render(), depth+1)
		}
	}
}

func (h *htmlWriter) element(node *VNode, depth int) {
	h.write("<")
	h.write(node.Tag)

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		h.attr(key, node.Props[key])
	}
	h.write(">")

	if IsVoidElement(node.Tag) {
		return
	}

	// Script and style content is not escaped
	rawText := node.Tag == "script" || node.Tag == "style"
	for _, child := range node.Children {
		if rawText && child != nil && child.Kind == KindText {
			h.write(child.Text)
			continue
		}
		h.node(child, depth)
	}

	h.write("</")
	h.write(node.Tag)
	h.write(">")
}

func (h *htmlWriter) attr(key string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case bool:
		if v {
			h.write(" ")
			h.write(key)
		}
		return
	}

	str := fmt.Sprintf("%v", value)

	// Block javascript: URLs in navigable attributes
	if (key == "href" || key == "src") && strings.HasPrefix(strings.ToLower(strings.TrimSpace(str)), "javascript:") {
		str = "#"
	}

	h.write(" ")
	h.write(key)
	h.write(`="`)
	h.write(html.EscapeString(str))
	h.write(`"`)
}
