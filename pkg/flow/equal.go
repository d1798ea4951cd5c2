package flow

import "reflect"

// StrictEqual reports whether a and b are the same value without coercion.
//
// Values of different dynamic types are never equal, so int(1) does not
// equal int64(1). Comparable values use ==: pointers compare by identity,
// structs and primitives by value, and NaN never equals anything. Slices are
// equal only when they share backing array, length and capacity, maps only
// when they are the same map. Funcs and other non-comparable values never
// match. Two structurally identical but distinct references do not match.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	if ra.Comparable() && rb.Comparable() {
		return a == b
	}

	switch ra.Kind() {
	case reflect.Slice:
		return ra.UnsafePointer() == rb.UnsafePointer() &&
			ra.Len() == rb.Len() &&
			ra.Cap() == rb.Cap()
	case reflect.Map:
		return ra.UnsafePointer() == rb.UnsafePointer()
	default:
		return false
	}
}
