// Package gallery holds named demo pages for the control-flow helpers.
//
// Every helper has at least one page showing normal use and one page per
// diagnostic it can raise. Page.Expect lists the warning codes a render is
// known to produce, so the gallery doubles as a behavioral check:
//
//	p, err := gallery.Get("switch-two-defaults")
//	if err != nil {
//	    return err
//	}
//	res, err := p.Render(flow.LogSink(logger))
//	fmt.Println(res.HTML, len(res.Warnings))
package gallery
