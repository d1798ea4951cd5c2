package flow

// Slot is a branch marker. It tags a payload with its role for the helper
// it is passed to and never renders by itself: passed anywhere else, such as
// directly into a vdom element, it contributes nothing.
//
// The set of slots is closed: *ThenSlot, *ElseIfSlot, *ElseSlot, *CaseSlot,
// *DefaultSlot and *EmptySlot.
type Slot interface {
	slotName() string
}

// ThenSlot is the truthy branch of If.
type ThenSlot struct {
	Payload any
}

// ElseIfSlot is a conditional branch of If, tried in declaration order
// after the primary condition fails.
type ElseIfSlot struct {
	conds   []prop
	Payload any
}

// ElseSlot is the fallback branch of If.
type ElseSlot struct {
	Payload any
}

// CaseSlot is a branch of Switch selected by strict equality with Value.
type CaseSlot struct {
	Value   any
	Payload any
}

// DefaultSlot is the fallback branch of Switch.
type DefaultSlot struct {
	Payload any
}

// EmptySlot is the fallback For renders when its source is empty.
type EmptySlot struct {
	Payload any
}

func (*ThenSlot) slotName() string    { return "Then" }
func (*ElseIfSlot) slotName() string  { return "ElseIf" }
func (*ElseSlot) slotName() string    { return "Else" }
func (*CaseSlot) slotName() string    { return "Case" }
func (*DefaultSlot) slotName() string { return "Default" }
func (*EmptySlot) slotName() string   { return "Empty" }

// SlotName returns the marker name of s ("Then", "Case", ...).
func SlotName(s Slot) string {
	if s == nil {
		return ""
	}
	return s.slotName()
}

// Then marks the children rendered when the If condition is truthy.
func Then(children ...any) *ThenSlot {
	return &ThenSlot{Payload: payloadOf(children)}
}

// ElseIf marks a conditional branch of If. Its arguments are Cond or
// CondFunc props plus the children rendered when it is selected.
func ElseIf(args ...any) *ElseIfSlot {
	slot := &ElseIfSlot{}
	children := make([]any, 0, len(args))
	for _, arg := range args {
		if c, ok := arg.(Condition); ok {
			slot.conds = append(slot.conds, c.prop)
			continue
		}
		children = append(children, arg)
	}
	slot.Payload = payloadOf(children)
	return slot
}

// Else marks the children If renders when no branch matches.
func Else(children ...any) *ElseSlot {
	return &ElseSlot{Payload: payloadOf(children)}
}

// Case marks the children Switch renders when its value equals value.
func Case(value any, children ...any) *CaseSlot {
	return &CaseSlot{Value: value, Payload: payloadOf(children)}
}

// Default marks the children Switch renders when no Case matches.
func Default(children ...any) *DefaultSlot {
	return &DefaultSlot{Payload: payloadOf(children)}
}

// Empty marks the children For renders when its source is empty.
func Empty(children ...any) *EmptySlot {
	return &EmptySlot{Payload: payloadOf(children)}
}

// payloadOf collapses slot children into a single payload.
func payloadOf(children []any) any {
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return children
	}
}
