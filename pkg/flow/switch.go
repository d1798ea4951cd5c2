package flow

import "github.com/vango-dev/flow/pkg/vdom"

// Switch renders the first Case whose value is strictly equal to the
// switch value, or the Default slot when none matches.
//
// Arguments may hold Value and ValueFunc (the getter wins when both are
// given, reporting W004), Case and Default slots, and WithSink. Without any
// Case or Default slot Switch reports W006 and renders nothing. More than
// one Default reports W007 and the first is used.
//
// Matching uses StrictEqual: no type coercion, and distinct references
// never match even when they hold identical data.
//
// Example:
//
//	flow.Switch(flow.Value(order.Status),
//	    flow.Case("paid", vdom.Text("Paid")),
//	    flow.Case("refunded", vdom.Text("Refunded")),
//	    flow.Default(vdom.Text("Pending")),
//	)
func Switch(args ...any) *vdom.VNode {
	r := newReporter("Switch")

	var (
		values   []prop
		cases    []*CaseSlot
		defaults []*DefaultSlot
	)

	for _, arg := range args {
		switch v := arg.(type) {
		case Selector:
			values = append(values, v.prop)
		case *CaseSlot:
			if v != nil {
				cases = append(cases, v)
			}
		case *DefaultSlot:
			if v != nil {
				defaults = append(defaults, v)
			}
		case SinkOption:
			r.use(v)
		}
	}

	value := resolve(values, r)

	if len(cases) == 0 && len(defaults) == 0 {
		r.warn("W006")
		return nil
	}

	if len(defaults) > 1 {
		r.warn("W007")
	}

	for _, c := range cases {
		if StrictEqual(c.Value, value) {
			return render(c.Payload)
		}
	}

	if len(defaults) > 0 {
		return render(defaults[0].Payload)
	}
	return nil
}
