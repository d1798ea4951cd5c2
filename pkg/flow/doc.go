// Package flow provides declarative control-flow helpers for vdom trees.
//
// Go statements cannot appear inside an element expression. The helpers
// For, If, Switch and Let express iteration, branching, multi-way dispatch
// and value binding as calls that return a node, so a whole view stays one
// expression:
//
//	vdom.Ul(
//	    flow.For(flow.Of(items),
//	        func(item Item, i int) *vdom.VNode { return vdom.Li(vdom.Text(item.Name)) },
//	        flow.Empty(vdom.Li(vdom.Text("No items"))),
//	    ),
//	)
//
// # Props and Slots
//
// Every helper takes its configuration as props (Cond, CondFunc, Value,
// ValueFunc, WithElse, WithEmpty, WithSink) and as slots (Then, ElseIf,
// Else, Case, Default, Empty). Getter props are evaluated once, at the
// moment the helper needs them. The same precedence applies everywhere:
//
//   - a getter wins over a direct value
//   - a fallback prop wins over a fallback slot
//
// Slots never render on their own. A slot passed anywhere other than its
// helper is ignored.
//
// # Payloads
//
// Slot children and fallbacks may be nodes, strings, components or
// producer functions such as func() *vdom.VNode. A producer runs only when
// its branch is selected.
//
// # Diagnostics
//
// Misuse never panics and never returns an error. The helper reports a coded
// Warning to a Sink and renders nothing, or the most specific fallback it
// has. The sink is DefaultSink (slog by default, see SetDefaultSink) unless
// the call carries WithSink. Recorder captures warnings for tests.
//
// All helpers are synchronous and keep no state between calls.
package flow
