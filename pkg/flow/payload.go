package flow

import (
	"fmt"

	"github.com/vango-dev/flow/pkg/vdom"
)

// render turns a payload into a node, invoking producer functions.
//
// A payload is nil, a *vdom.VNode, a []*vdom.VNode, a string, a number,
// a vdom.Component, a producer (func() *vdom.VNode, func() []*vdom.VNode,
// func() string, func() any) or a []any of those. Empty strings and
// unsupported values render nothing.
func render(payload any) *vdom.VNode {
	switch v := payload.(type) {
	case nil:
		return nil
	case *vdom.VNode:
		return v
	case []*vdom.VNode:
		return vdom.Fragment(v)
	case string:
		if v == "" {
			return nil
		}
		return vdom.Text(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return vdom.Text(fmt.Sprint(v))
	case vdom.Component:
		return &vdom.VNode{Kind: vdom.KindComponent, Comp: v}
	case func() *vdom.VNode:
		if v == nil {
			return nil
		}
		return v()
	case func() []*vdom.VNode:
		if v == nil {
			return nil
		}
		return vdom.Fragment(v())
	case func() string:
		if v == nil {
			return nil
		}
		return render(v())
	case func() any:
		if v == nil {
			return nil
		}
		return render(v())
	case []any:
		nodes := make([]*vdom.VNode, 0, len(v))
		for _, item := range v {
			if node := render(item); node != nil {
				nodes = append(nodes, node)
			}
		}
		return vdom.Fragment(nodes)
	default:
		return nil
	}
}

// isProducer reports whether payload is a non-nil producer function.
func isProducer(payload any) bool {
	switch v := payload.(type) {
	case func() *vdom.VNode:
		return v != nil
	case func() []*vdom.VNode:
		return v != nil
	case func() string:
		return v != nil
	case func() any:
		return v != nil
	default:
		return false
	}
}
