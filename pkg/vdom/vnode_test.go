package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeTextContent(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{"nil node", nil, ""},
		{"text", Text("hi"), "hi"},
		{"raw skipped", Div(Raw("<b>x</b>"), Text("y")), "y"},
		{"nested", Div(P(Text("a")), Span(Text("b"))), "ab"},
		{"nil children", List([]*VNode{nil, Text("z")}), "z"},
		{"component", Div(Func(func() *VNode { return Text("comp") })), "comp"},
		{"nil component render", Div(Func(func() *VNode { return nil })), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.TextContent(); got != tt.want {
				t.Errorf("TextContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttrIsEmpty(t *testing.T) {
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
	if Class("x").IsEmpty() {
		t.Error("Class attr should not be empty")
	}
}

func TestFuncComponent(t *testing.T) {
	calls := 0
	comp := Func(func() *VNode {
		calls++
		return Text("rendered")
	})

	node := comp.Render()
	if node.Text != "rendered" {
		t.Errorf("Render().Text = %q, want %q", node.Text, "rendered")
	}
	if calls != 1 {
		t.Errorf("render calls = %d, want 1", calls)
	}
}
