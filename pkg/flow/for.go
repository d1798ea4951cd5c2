package flow

import (
	"strconv"

	"github.com/vango-dev/flow/pkg/vdom"
)

// entryRenderer renders one element given its position and key.
type entryRenderer[T any] func(value T, index int, key string) *vdom.VNode

// entryRendererOf adapts the supported render function shapes.
// It returns nil for anything else.
func entryRendererOf[T any](child any) entryRenderer[T] {
	switch fn := child.(type) {
	case func(T, int) *vdom.VNode:
		if fn != nil {
			return func(v T, i int, _ string) *vdom.VNode { return fn(v, i) }
		}
	case func(T, string) *vdom.VNode:
		if fn != nil {
			return func(v T, _ int, k string) *vdom.VNode { return fn(v, k) }
		}
	case func(T) *vdom.VNode:
		if fn != nil {
			return func(v T, _ int, _ string) *vdom.VNode { return fn(v) }
		}
	}
	return nil
}

// For renders every element of a sequence, or every entry of a mapping,
// through a render function.
//
// Children may hold:
//   - a render function: func(T, int) *vdom.VNode, func(T, string) *vdom.VNode
//     or func(T) *vdom.VNode. The first one found is used. In sequence mode
//     the int is the zero-based index and the string its decimal form; in
//     mapping mode the string is the key and the int the entry position.
//   - further Source values. Any mapping source selects mapping mode and
//     wins over sequence sources, reporting W001. Within a mode a getter
//     source (OfFunc, OfSeqFunc, InFunc) wins over a value source,
//     reporting W004; otherwise the last source of each form is used.
//   - WithEmpty and Empty, the fallbacks rendered for an empty source.
//     WithEmpty wins; supplying both reports W003.
//   - WithSink.
//
// A non-empty source renders as a fragment with exactly one child per
// element, in source order, nil results included. Without a render
// function For reports W002 and renders nothing.
//
// Example:
//
//	flow.For(flow.Of(todos),
//	    func(t Todo, i int) *vdom.VNode {
//	        return vdom.Li(vdom.Key(t.ID), vdom.Text(t.Title))
//	    },
//	    flow.Empty(vdom.P(vdom.Text("Nothing to do"))),
//	)
func For[T any](src Source[T], children ...any) *vdom.VNode {
	r := newReporter("For")

	var (
		seqProps, mapProps []prop
		renderFn           entryRenderer[T]
		emptyProp      *EmptyProp
		emptySlot      *EmptySlot
	)

	sources := []Source[T]{src}
	for _, child := range children {
		switch v := child.(type) {
		case Source[T]:
			sources = append(sources, v)
		case EmptyProp:
			if v.Payload != nil {
				emptyProp = &v
			}
		case *EmptySlot:
			if emptySlot == nil && v != nil {
				emptySlot = v
			}
		case SinkOption:
			r.use(v)
		default:
			if renderFn == nil {
				renderFn = entryRendererOf[T](child)
			}
		}
	}

	for _, s := range sources {
		if !s.present() {
			continue
		}
		if s.mapping {
			mapProps = append(mapProps, s.asProp())
		} else {
			seqProps = append(seqProps, s.asProp())
		}
	}

	mappingMode := len(mapProps) > 0
	if mappingMode && len(seqProps) > 0 {
		r.warn("W001")
	}

	var (
		items   []T
		entries []entry[T]
	)
	if mappingMode {
		entries = materializeEntries(resolve(mapProps, r).(Source[T]))
	} else if len(seqProps) > 0 {
		items = materializeSeq(resolve(seqProps, r).(Source[T]))
	}

	if renderFn == nil {
		r.warn("W002")
		return nil
	}

	if emptyProp != nil && emptySlot != nil {
		r.warn("W003")
	}

	isEmpty := len(items) == 0
	if mappingMode {
		isEmpty = len(entries) == 0
	}

	if isEmpty {
		switch {
		case emptyProp != nil:
			return render(emptyProp.Payload)
		case emptySlot != nil:
			return render(emptySlot.Payload)
		default:
			return nil
		}
	}

	if mappingMode {
		nodes := make([]*vdom.VNode, len(entries))
		for i, e := range entries {
			nodes[i] = renderFn(e.value, i, e.key)
		}
		return vdom.List(nodes)
	}

	nodes := make([]*vdom.VNode, len(items))
	for i, item := range items {
		nodes[i] = renderFn(item, i, strconv.Itoa(i))
	}
	return vdom.List(nodes)
}
