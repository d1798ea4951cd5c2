package gallery

import (
	stderrors "errors"
	"slices"
	"strings"
	"testing"

	"github.com/vango-dev/flow/internal/errors"
	"github.com/vango-dev/flow/pkg/flow"
)

func TestPages_RaiseExpectedWarnings(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			res, err := p.Render(nil)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			codes := make([]string, len(res.Warnings))
			for i, w := range res.Warnings {
				codes[i] = w.Code
			}
			if !slices.Equal(codes, p.Expect) {
				t.Errorf("codes = %v, want %v", codes, p.Expect)
			}
		})
	}
}

func TestPages_Output(t *testing.T) {
	tests := []struct {
		page    string
		want    []string
		notWant []string
	}{
		{"for-list", []string{`<li class="done">1. Write the parser</li>`, "3. Ship it"}, nil},
		{"for-mapping", []string{"<dt>apples</dt><dd>12</dd><dt>figs</dt><dd>0</dd><dt>pears</dt>"}, nil},
		{"for-empty", []string{"Nothing to do"}, nil},
		{"for-string", []string{`<span data-pos="0">F</span>`, `<span data-pos="3">W</span>`}, nil},
		{"for-in-and-of", []string{"used: mapping wins"}, []string{"ignored"}},
		{"for-no-render", []string{"<ul></ul>"}, []string{"not a function"}},
		{"for-empty-both", []string{"from the prop"}, []string{"from the slot"}},
		{"if-chain", []string{"Grade C"}, []string{"Grade D", "Grade F"}},
		{"if-getter-and-value", []string{"the getter decided"}, nil},
		{"if-no-then", []string{"<p></p>"}, []string{"never shown"}},
		{"if-else-both", []string{"from the prop"}, []string{"from the slot", "signed in"}},
		{"switch-status", []string{"<strong>Paid</strong>", "<em>Refunded</em>", "Awaiting payment"}, nil},
		{"switch-identity", []string{"the current account"}, []string{"lookalike"}},
		{"switch-no-cases", []string{"<p></p>"}, nil},
		{"switch-two-defaults", []string{"first default"}, []string{"second default"}},
		{"let-binding", []string{`data-open="2"`, "2 of 3 tasks open"}, nil},
		{"let-no-function", []string{"<p></p>"}, nil},
		{"slots-inert", []string{`<div class="card">Only this text renders.</div>`}, []string{"hidden"}},
	}

	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			p, err := Get(tt.page)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			res, err := p.Render(flow.Discard)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(res.HTML, want) {
					t.Errorf("HTML = %q, missing %q", res.HTML, want)
				}
			}
			for _, bad := range tt.notWant {
				if strings.Contains(res.HTML, bad) {
					t.Errorf("HTML = %q, should not contain %q", res.HTML, bad)
				}
			}
		})
	}
}

func TestPages_AllCovered(t *testing.T) {
	// Every diagnostic has a page demonstrating it.
	seen := map[string]bool{}
	for _, p := range All() {
		for _, code := range p.Expect {
			seen[code] = true
		}
	}
	for _, code := range []string{"W001", "W002", "W003", "W004", "W005", "W006", "W007", "W008", "W009"} {
		if !seen[code] {
			t.Errorf("no page raises %s", code)
		}
	}
}

func TestRender_ForwardsToSink(t *testing.T) {
	p, err := Get("switch-two-defaults")
	if err != nil {
		t.Fatal(err)
	}

	rec := &flow.Recorder{}
	res, err := p.Render(rec)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if rec.Len() != 1 || len(res.Warnings) != 1 {
		t.Errorf("sink = %d, result = %d, want 1, 1", rec.Len(), len(res.Warnings))
	}
	if res.Page != p || res.Node == nil {
		t.Error("result should carry the page and its node")
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("nope")

	var fe *errors.Error
	if !stderrors.As(err, &fe) || fe.Code != "E143" {
		t.Fatalf("Get() error = %v, want E143", err)
	}
	if !strings.Contains(fe.Suggestion, "for-list") {
		t.Errorf("Suggestion = %q, want page names", fe.Suggestion)
	}
}

func TestList_Sorted(t *testing.T) {
	names := List()
	if !slices.IsSorted(names) {
		t.Errorf("List() = %v, want sorted", names)
	}
	if len(names) != len(All()) {
		t.Errorf("len(List()) = %d, len(All()) = %d", len(names), len(All()))
	}
}

func TestDocument(t *testing.T) {
	p, _ := Get("let-binding")
	res, _ := p.Render(nil)

	doc := Document(p.Title, res.Node)
	if doc.Tag != "html" {
		t.Fatalf("Tag = %q, want html", doc.Tag)
	}
	if got := doc.TextContent(); !strings.Contains(got, "2 of 3 tasks open") {
		t.Errorf("TextContent() = %q, want page body", got)
	}
}
