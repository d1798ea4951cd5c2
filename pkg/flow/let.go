package flow

import "github.com/vango-dev/flow/pkg/vdom"

// Let renders value through a render function, binding it to a name
// inside an expression tree.
//
// The first func(T) *vdom.VNode in children is used; without one Let
// reports W008 and renders nothing. WithSink is also accepted.
//
// Example:
//
//	flow.Let(cart.Total(), func(total Money) *vdom.VNode {
//	    return vdom.Strong(vdom.Text(total.String()))
//	})
func Let[T any](value T, children ...any) *vdom.VNode {
	r := newReporter("Let")

	var fn func(T) *vdom.VNode
	for _, child := range children {
		switch v := child.(type) {
		case func(T) *vdom.VNode:
			if fn == nil && v != nil {
				fn = v
			}
		case SinkOption:
			r.use(v)
		}
	}

	if fn == nil {
		r.warn("W008")
		return nil
	}
	return fn(value)
}
