package gallery

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/vango-dev/flow/internal/errors"
	"github.com/vango-dev/flow/pkg/flow"
	"github.com/vango-dev/flow/pkg/vdom"
)

// Page is a named demo of one or more helpers.
type Page struct {
	// Name is the page identifier used on the command line and in URLs.
	Name string

	// Title is shown as the page heading.
	Title string

	// Description explains what the page demonstrates.
	Description string

	// Expect lists the warning codes a render of the page raises, in order.
	Expect []string

	// Build renders the page body, routing every warning to sink.
	Build func(sink flow.Sink) *vdom.VNode
}

// Result is the outcome of rendering a page.
type Result struct {
	Page     *Page
	Node     *vdom.VNode
	HTML     string
	Warnings []flow.Warning
	Duration time.Duration
}

var pages = map[string]*Page{}

func register(p *Page) {
	pages[p.Name] = p
}

// Get returns a page by name.
func Get(name string) (*Page, error) {
	p, ok := pages[name]
	if !ok {
		return nil, errors.New("E143").
			WithDetail("Page '" + name + "' not found").
			WithSuggestion("Available pages: " + strings.Join(List(), ", "))
	}
	return p, nil
}

// List returns all page names in sorted order.
func List() []string {
	return slices.Sorted(maps.Keys(pages))
}

// All returns every page ordered by name.
func All() []*Page {
	names := List()
	out := make([]*Page, len(names))
	for i, name := range names {
		out[i] = pages[name]
	}
	return out
}

// Render builds the page and renders it to HTML.
// Warnings go to sink as well as into the result. A nil sink records only.
func (p *Page) Render(sink flow.Sink) (*Result, error) {
	rec := &flow.Recorder{}
	combined := flow.Multi(rec, sink)

	start := time.Now()
	node := p.Build(combined)
	html, err := vdom.RenderString(node)
	duration := time.Since(start)

	res := &Result{
		Page:     p,
		Node:     node,
		HTML:     html,
		Warnings: rec.Warnings(),
		Duration: duration,
	}
	if err != nil {
		return res, errors.Newf(errors.CategoryRender, "render page %s: %v", p.Name, err).Wrap(err)
	}
	return res, nil
}

// Document wraps body in a complete HTML page.
func Document(title string, body ...any) *vdom.VNode {
	return vdom.Html(vdom.Lang("en"),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Title(vdom.Text(title)),
			vdom.Style(vdom.Text(stylesheet)),
		),
		vdom.Body(
			vdom.Main(body...),
		),
	)
}

const stylesheet = `body{font-family:system-ui,sans-serif;margin:2rem auto;max-width:48rem;line-height:1.5}
code,pre{background:#f4f4f5;padding:.1rem .3rem;border-radius:.25rem}
.warnings{border-left:4px solid #d97706;padding-left:1rem}
.demo{border:1px dashed #a1a1aa;padding:1rem;margin:1rem 0}`
