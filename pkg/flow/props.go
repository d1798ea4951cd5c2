package flow

// prop holds a value given either directly or as a getter.
type prop struct {
	value any
	get   func() any
	lazy  bool
}

// Condition is the condition prop of If and ElseIf.
type Condition struct{ prop }

// Cond supplies a condition value. It is tested with Truthy.
func Cond(v any) Condition {
	return Condition{prop{value: v}}
}

// CondFunc supplies a condition getter, evaluated once when the branch is
// considered. The result is tested with Truthy. A nil getter yields nil.
func CondFunc[T any](fn func() T) Condition {
	return Condition{getter(fn)}
}

// Selector is the value prop of Switch.
type Selector struct{ prop }

// Value supplies the value Switch compares against each Case.
func Value(v any) Selector {
	return Selector{prop{value: v}}
}

// ValueFunc supplies a getter for the value Switch compares against each Case.
// A nil getter yields nil.
func ValueFunc[T any](fn func() T) Selector {
	return Selector{getter(fn)}
}

func getter[T any](fn func() T) prop {
	return prop{
		get: func() any {
			if fn == nil {
				return nil
			}
			return fn()
		},
		lazy: true,
	}
}

// ElseProp is the else prop of If.
type ElseProp struct {
	Payload any
}

// WithElse supplies the fallback If renders when no branch matches.
// It takes precedence over an Else slot. A nil payload counts as absent.
func WithElse(payload any) ElseProp {
	return ElseProp{Payload: payload}
}

// EmptyProp is the empty prop of For.
type EmptyProp struct {
	Payload any
}

// WithEmpty supplies the fallback For renders when its source is empty.
// It takes precedence over an Empty slot. A nil payload counts as absent.
func WithEmpty(payload any) EmptyProp {
	return EmptyProp{Payload: payload}
}

// resolve picks the getter over the direct value and evaluates it once.
// The last prop of each form wins. Both forms present reports W004.
func resolve(props []prop, r reporter) any {
	var (
		value             any
		get               func() any
		hasValue, hasLazy bool
	)
	for _, p := range props {
		if p.lazy {
			get, hasLazy = p.get, true
		} else {
			value, hasValue = p.value, true
		}
	}

	if hasLazy && hasValue {
		r.warn("W004")
	}
	if hasLazy {
		return get()
	}
	return value
}
