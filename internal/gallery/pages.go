package gallery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vango-dev/flow/pkg/flow"
	"github.com/vango-dev/flow/pkg/vdom"
)

func init() {
	for _, p := range []*Page{
		forListPage(),
		forMappingPage(),
		forEmptyPage(),
		forStringPage(),
		forInAndOfPage(),
		forNoRenderPage(),
		forEmptyBothPage(),
		ifChainPage(),
		ifGetterPage(),
		ifNoThenPage(),
		ifElseBothPage(),
		switchStatusPage(),
		switchIdentityPage(),
		switchNoCasesPage(),
		switchDefaultsPage(),
		letPage(),
		letNoFuncPage(),
		slotsPage(),
	} {
		register(p)
	}
}

type todo struct {
	ID    int
	Title string
	Done  bool
}

var todos = []todo{
	{ID: 1, Title: "Write the parser", Done: true},
	{ID: 2, Title: "Wire the metrics", Done: false},
	{ID: 3, Title: "Ship it", Done: false},
}

type account struct {
	Name string
	Plan string
}

func forListPage() *Page {
	return &Page{
		Name:        "for-list",
		Title:       "For over a slice",
		Description: "One list item per element, in order, with its index.",
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.Ol(
				flow.For(flow.Of(todos),
					func(t todo, i int) *vdom.VNode {
						return vdom.Li(vdom.Key(t.ID),
							vdom.Class(doneClass(t.Done)),
							vdom.Textf("%d. %s", i+1, t.Title),
						)
					},
					flow.WithSink(sink),
				),
			)
		},
	}
}

func doneClass(done bool) string {
	if done {
		return "done"
	}
	return "open"
}

func forMappingPage() *Page {
	return &Page{
		Name:        "for-mapping",
		Title:       "For over a mapping",
		Description: "Entries of a map in sorted key order, rendered with their key.",
		Build: func(sink flow.Sink) *vdom.VNode {
			stock := map[string]int{"pears": 4, "apples": 12, "figs": 0}
			return vdom.Dl(
				flow.For(flow.In(stock),
					func(n int, fruit string) *vdom.VNode {
						return vdom.Fragment(
							vdom.Dt(vdom.Text(fruit)),
							vdom.Dd(vdom.Text(strconv.Itoa(n))),
						)
					},
					flow.WithSink(sink),
				),
			)
		},
	}
}

func forEmptyPage() *Page {
	return &Page{
		Name:        "for-empty",
		Title:       "For with an empty source",
		Description: "The Empty slot renders when there is nothing to iterate.",
		Build: func(sink flow.Sink) *vdom.VNode {
			var none []todo
			return vdom.Ul(
				flow.For(flow.Of(none),
					func(t todo) *vdom.VNode { return vdom.Li(vdom.Text(t.Title)) },
					flow.Empty(vdom.Li(vdom.Class("empty"), vdom.Text("Nothing to do"))),
					flow.WithSink(sink),
				),
			)
		},
	}
}

func forStringPage() *Page {
	return &Page{
		Name:        "for-string",
		Title:       "For over a string",
		Description: "A string iterates by character.",
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.P(
				flow.For(flow.OfString("flow"),
					func(ch string, i int) *vdom.VNode {
						return vdom.Span(vdom.Data("pos", strconv.Itoa(i)), vdom.Text(strings.ToUpper(ch)))
					},
					flow.WithSink(sink),
				),
			)
		},
	}
}

func forInAndOfPage() *Page {
	return &Page{
		Name:        "for-in-and-of",
		Title:       "Misuse: both sources",
		Description: "Given a mapping and a sequence, For iterates the mapping.",
		Expect:      []string{"W001"},
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.Ul(
				flow.For(flow.Of([]string{"ignored"}),
					flow.In(map[string]string{"used": "mapping wins"}),
					func(v, k string) *vdom.VNode { return vdom.Li(vdom.Text(k + ": " + v)) },
					flow.WithSink(sink),
				),
			)
		},
	}
}

func forNoRenderPage() *Page {
	return &Page{
		Name:        "for-no-render",
		Title:       "Misuse: no render function",
		Description: "Without a render function For renders nothing.",
		Expect:      []string{"W002"},
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.Ul(
				flow.For(flow.Of(todos), vdom.Li(vdom.Text("not a function")), flow.WithSink(sink)),
			)
		},
	}
}

func forEmptyBothPage() *Page {
	return &Page{
		Name:        "for-empty-both",
		Title:       "Misuse: empty prop and slot",
		Description: "WithEmpty wins over the Empty slot.",
		Expect:      []string{"W003"},
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.Ul(
				flow.For(flow.Of([]todo{}),
					func(t todo) *vdom.VNode { return vdom.Li(vdom.Text(t.Title)) },
					flow.WithEmpty(vdom.Li(vdom.Text("from the prop"))),
					flow.Empty(vdom.Li(vdom.Text("from the slot"))),
					flow.WithSink(sink),
				),
			)
		},
	}
}

func ifChainPage() *Page {
	return &Page{
		Name:        "if-chain",
		Title:       "If with ElseIf",
		Description: "The first truthy else-if wins; later ones are never evaluated.",
		Build: func(sink flow.Sink) *vdom.VNode {
			score := 72
			return vdom.P(
				flow.If(flow.Cond(score >= 90),
					flow.Then("Grade A"),
					flow.ElseIf(flow.Cond(score >= 80), "Grade B"),
					flow.ElseIf(flow.CondFunc(func() bool { return score >= 70 }), "Grade C"),
					flow.ElseIf(flow.Cond(score >= 60), "Grade D"),
					flow.Else("Grade F"),
					flow.WithSink(sink),
				),
			)
		},
	}
}

func ifGetterPage() *Page {
	return &Page{
		Name:        "if-getter-and-value",
		Title:       "Misuse: value and getter",
		Description: "The getter wins over the direct value.",
		Expect:      []string{"W004"},
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.P(
				flow.If(flow.Cond(false),
					flow.CondFunc(func() bool { return true }),
					flow.Then("the getter decided"),
					flow.Else("the value decided"),
					flow.WithSink(sink),
				),
			)
		},
	}
}

func ifNoThenPage() *Page {
	return &Page{
		Name:        "if-no-then",
		Title:       "Misuse: no Then",
		Description: "Without a Then slot or producer If renders nothing.",
		Expect:      []string{"W005"},
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.P(
				flow.If(flow.Cond(true), flow.Else("never shown"), flow.WithSink(sink)),
			)
		},
	}
}

func ifElseBothPage() *Page {
	return &Page{
		Name:        "if-else-both",
		Title:       "Misuse: else prop and slot",
		Description: "WithElse wins over the Else slot.",
		Expect:      []string{"W009"},
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.P(
				flow.If(flow.Cond(nil),
					func() *vdom.VNode { return vdom.Text("signed in") },
					flow.WithElse("from the prop"),
					flow.Else("from the slot"),
					flow.WithSink(sink),
				),
			)
		},
	}
}

func switchStatusPage() *Page {
	return &Page{
		Name:        "switch-status",
		Title:       "Switch on a value",
		Description: "Cases compare strictly; Default catches the rest.",
		Build: func(sink flow.Sink) *vdom.VNode {
			statuses := []string{"paid", "refunded", "pending"}
			return vdom.Ul(
				flow.For(flow.Of(statuses),
					func(status string) *vdom.VNode {
						return vdom.Li(
							flow.Switch(flow.Value(status),
								flow.Case("paid", vdom.Strong(vdom.Text("Paid"))),
								flow.Case("refunded", vdom.Em(vdom.Text("Refunded"))),
								flow.Default(vdom.Text("Awaiting payment")),
								flow.WithSink(sink),
							),
						)
					},
					flow.WithSink(sink),
				),
			)
		},
	}
}

func switchIdentityPage() *Page {
	return &Page{
		Name:        "switch-identity",
		Title:       "Switch by reference",
		Description: "Two accounts with identical data are still different values.",
		Build: func(sink flow.Sink) *vdom.VNode {
			current := &account{Name: "ada", Plan: "pro"}
			lookalike := &account{Name: "ada", Plan: "pro"}
			return vdom.P(
				flow.Switch(flow.ValueFunc(func() *account { return current }),
					flow.Case(lookalike, "the lookalike"),
					flow.Case(current, "the current account"),
					flow.WithSink(sink),
				),
			)
		},
	}
}

func switchNoCasesPage() *Page {
	return &Page{
		Name:        "switch-no-cases",
		Title:       "Misuse: no branches",
		Description: "Without Case or Default slots Switch renders nothing.",
		Expect:      []string{"W006"},
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.P(flow.Switch(flow.Value("anything"), flow.WithSink(sink)))
		},
	}
}

func switchDefaultsPage() *Page {
	return &Page{
		Name:        "switch-two-defaults",
		Title:       "Misuse: two defaults",
		Description: "The first Default is used.",
		Expect:      []string{"W007"},
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.P(
				flow.Switch(flow.Value(3),
					flow.Case(1, "one"),
					flow.Default("first default"),
					flow.Default("second default"),
					flow.WithSink(sink),
				),
			)
		},
	}
}

func letPage() *Page {
	return &Page{
		Name:        "let-binding",
		Title:       "Let",
		Description: "Bind a computed value once and use it twice.",
		Build: func(sink flow.Sink) *vdom.VNode {
			open := 0
			for _, t := range todos {
				if !t.Done {
					open++
				}
			}
			return flow.Let(open, func(n int) *vdom.VNode {
				return vdom.P(
					vdom.Data("open", strconv.Itoa(n)),
					vdom.Text(fmt.Sprintf("%d of %d tasks open", n, len(todos))),
				)
			}, flow.WithSink(sink))
		},
	}
}

func letNoFuncPage() *Page {
	return &Page{
		Name:        "let-no-function",
		Title:       "Misuse: Let without a function",
		Description: "A non-function child renders nothing.",
		Expect:      []string{"W008"},
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.P(flow.Let("value", "not a function", flow.WithSink(sink)))
		},
	}
}

func slotsPage() *Page {
	return &Page{
		Name:        "slots-inert",
		Title:       "Slots outside their helper",
		Description: "Slot markers passed to an element contribute nothing.",
		Build: func(sink flow.Sink) *vdom.VNode {
			return vdom.Div(vdom.Class("card"),
				flow.Then("hidden"),
				flow.Case("x", "hidden"),
				flow.Empty("hidden"),
				vdom.Text("Only this text renders."),
			)
		},
	}
}
