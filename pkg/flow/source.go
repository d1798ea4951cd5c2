package flow

import (
	"iter"
	"maps"
	"slices"
)

// Source is the collection For iterates: a sequence (the "of" prop) or a
// string-keyed mapping (the "in" prop). Getter sources are evaluated once
// per For call.
type Source[T any] struct {
	mapping bool
	lazy    bool
	seq     func() iter.Seq[T]
	entries func() iter.Seq2[string, T]
}

// IsMapping reports whether s selects mapping mode.
func (s Source[T]) IsMapping() bool {
	return s.mapping
}

// asProp wraps s so resolve can weigh getter sources against value sources.
func (s Source[T]) asProp() prop {
	if s.lazy {
		return prop{get: func() any { return s }, lazy: true}
	}
	return prop{value: s}
}

// present reports whether s was built by a constructor rather than being
// a zero Source.
func (s Source[T]) present() bool {
	return s.seq != nil || s.entries != nil
}

// Of iterates a slice in order. A nil slice is empty.
func Of[T any](items []T) Source[T] {
	return Source[T]{seq: func() iter.Seq[T] { return slices.Values(items) }}
}

// OfSeq iterates any sequence in the order it yields. A nil sequence is empty.
func OfSeq[T any](seq iter.Seq[T]) Source[T] {
	return Source[T]{seq: func() iter.Seq[T] { return seq }}
}

// OfString iterates the characters of s, one string per code point.
func OfString(s string) Source[string] {
	return Source[string]{seq: func() iter.Seq[string] {
		return func(yield func(string) bool) {
			for _, r := range s {
				if !yield(string(r)) {
					return
				}
			}
		}
	}}
}

// OfFunc iterates the slice returned by fn. fn is called once per render.
func OfFunc[T any](fn func() []T) Source[T] {
	return Source[T]{lazy: true, seq: func() iter.Seq[T] {
		if fn == nil {
			return nil
		}
		return slices.Values(fn())
	}}
}

// OfSeqFunc iterates the sequence returned by fn. fn is called once per render.
func OfSeqFunc[T any](fn func() iter.Seq[T]) Source[T] {
	return Source[T]{lazy: true, seq: func() iter.Seq[T] {
		if fn == nil {
			return nil
		}
		return fn()
	}}
}

// In iterates the entries of m in sorted key order. Go maps carry no
// insertion order; use InSeq when the order of entries matters.
// In always selects mapping mode, even when m is nil.
func In[T any](m map[string]T) Source[T] {
	return Source[T]{mapping: true, entries: func() iter.Seq2[string, T] {
		return sortedEntries(m)
	}}
}

// InSeq iterates key/value pairs in the order seq yields them.
func InSeq[T any](seq iter.Seq2[string, T]) Source[T] {
	return Source[T]{mapping: true, entries: func() iter.Seq2[string, T] { return seq }}
}

// InFunc iterates the entries of the map returned by fn in sorted key order.
// fn is called once per render.
func InFunc[T any](fn func() map[string]T) Source[T] {
	return Source[T]{mapping: true, lazy: true, entries: func() iter.Seq2[string, T] {
		if fn == nil {
			return nil
		}
		return sortedEntries(fn())
	}}
}

func sortedEntries[T any](m map[string]T) iter.Seq2[string, T] {
	if m == nil {
		return nil
	}
	keys := slices.Sorted(maps.Keys(m))
	return func(yield func(string, T) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

// entry is one materialized element of a Source.
type entry[T any] struct {
	key   string
	value T
}

// materializeSeq collects the sequence once, preserving order.
func materializeSeq[T any](s Source[T]) []T {
	seq := s.seq()
	if seq == nil {
		return nil
	}
	var items []T
	for item := range seq {
		items = append(items, item)
	}
	return items
}

// materializeEntries collects the mapping once, preserving order.
func materializeEntries[T any](s Source[T]) []entry[T] {
	seq := s.entries()
	if seq == nil {
		return nil
	}
	var items []entry[T]
	for k, v := range seq {
		items = append(items, entry[T]{key: k, value: v})
	}
	return items
}
