package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <li>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
//
// Children of a fragment may contain nil entries: a fragment produced by a
// list helper keeps one slot per source entry even when an entry renders
// nothing. Every consumer in this module skips nil children.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Props holds element attributes.
type Props map[string]any

// TextContent returns the concatenated text of the node and its descendants.
// Components are rendered to reach their text.
func (v *VNode) TextContent() string {
	var b strings.Builder
	v.appendText(&b)
	return b.String()
}

func (v *VNode) appendText(b *strings.Builder) {
	if v == nil {
		return
	}
	switch v.Kind {
	case KindText:
		b.WriteString(v.Text)
	case KindComponent:
		if v.Comp != nil {
			v.Comp.Render().appendText(b)
		}
	case KindRaw:
		// Raw HTML has no reliable text form.
	default:
		for _, child := range v.Children {
			child.appendText(b)
		}
	}
}

// Len returns the number of children, counting nil entries.
func (v *VNode) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Children)
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
