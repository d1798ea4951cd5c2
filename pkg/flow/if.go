package flow

import "github.com/vango-dev/flow/pkg/vdom"

// If renders one branch chosen by a condition.
//
// Arguments may hold:
//   - Cond and CondFunc, the primary condition. The getter wins when both
//     are given, reporting W004. With neither the condition is falsy.
//   - Then, or a bare producer function, for the truthy branch. Then wins
//     when both are given. With neither If reports W005 and renders nothing.
//   - ElseIf slots, tried in order once the primary condition fails. The
//     first truthy one is rendered and later ones are not evaluated.
//   - WithElse and Else, the fallback. WithElse wins; supplying both
//     reports W009.
//   - WithSink.
//
// Conditions are tested with Truthy.
//
// Example:
//
//	flow.If(flow.Cond(user != nil),
//	    flow.Then(vdom.Text("Welcome back")),
//	    flow.ElseIf(flow.CondFunc(isGuest), vdom.Text("Hello, guest")),
//	    flow.Else(vdom.A(vdom.Href("/login"), "Sign in")),
//	)
func If(args ...any) *vdom.VNode {
	r := newReporter("If")

	var (
		conds    []prop
		thenSlot *ThenSlot
		thenFn   any
		elseIfs  []*ElseIfSlot
		elseSlot *ElseSlot
		elseProp *ElseProp
	)

	for _, arg := range args {
		switch v := arg.(type) {
		case Condition:
			conds = append(conds, v.prop)
		case *ThenSlot:
			if thenSlot == nil && v != nil {
				thenSlot = v
			}
		case *ElseIfSlot:
			if v != nil {
				elseIfs = append(elseIfs, v)
			}
		case *ElseSlot:
			if elseSlot == nil && v != nil {
				elseSlot = v
			}
		case ElseProp:
			if v.Payload != nil {
				elseProp = &v
			}
		case SinkOption:
			r.use(v)
		default:
			if thenFn == nil && isProducer(arg) {
				thenFn = arg
			}
		}
	}

	cond := resolve(conds, r)

	if thenSlot == nil && thenFn == nil {
		r.warn("W005")
		return nil
	}

	if elseProp != nil && elseSlot != nil {
		r.warn("W009")
	}

	if Truthy(cond) {
		if thenSlot != nil {
			return render(thenSlot.Payload)
		}
		return render(thenFn)
	}

	for _, slot := range elseIfs {
		if Truthy(resolve(slot.conds, r)) {
			return render(slot.Payload)
		}
	}

	switch {
	case elseProp != nil:
		return render(elseProp.Payload)
	case elseSlot != nil:
		return render(elseSlot.Payload)
	default:
		return nil
	}
}
