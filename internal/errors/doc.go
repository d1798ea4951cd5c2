// Package errors provides the coded diagnostics and errors used across flow.
//
// Every diagnostic the render helpers emit, and every error the CLI and
// configuration loader return, is registered here under a stable code. A
// code maps to:
//   - A severity (warning or error)
//   - A category (render, config, cli)
//   - A short message and a longer explanation
//   - A documentation URL
//
// # Codes
//
// W001-W099 are render warnings. They never stop rendering; the helpers
// report them through a flow.Sink and fall back to rendering nothing or the
// most specific fallback available.
//
// E120-E199 are configuration and CLI errors returned as *Error values.
//
// # Usage
//
//	err := errors.New("E120").
//	    WithLocation("flow.json", 4, 12).
//	    WithSuggestion("Check that flow.json is valid JSON")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E120: Invalid flow.json
//	//
//	//   flow.json:4:12
//	//   ...
package errors
