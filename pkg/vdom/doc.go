// Package vdom provides the virtual node model rendered by the flow helpers.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes. Attr is used
// to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments of an unknown type are ignored, so branch markers from package
// flow placed directly inside an element render nothing.
//
// # Serialization
//
// RenderHTML and RenderString write a tree as HTML. Attributes are written
// in sorted order so output is stable.
package vdom
