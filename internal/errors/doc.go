// Package errors provides structured, actionable error messages for the
// ariaid CLI and server.
//
// Errors carry a code (e.g. "E010") that maps to a category, a short message,
// a longer explanation and a documentation URL. Builder methods add detail,
// a suggestion and the file the error was found in:
//
//	err := errors.New("E021").
//	    WithFile("dist/index.html").
//	    WithDetail(`aria-controls="menu-2" names no element`).
//	    WithSuggestion("Render the controlled element with the ID returned by a11y.Interactive")
//
//	fmt.Println(err.Format())
//	// ERROR E021: Dangling ARIA reference
//	//
//	//   dist/index.html
//	//
//	//   aria-controls="menu-2" names no element
//	//
//	//   Hint: Render the controlled element with the ID returned by a11y.Interactive
//	//
//	//   Learn more: https://vango.dev/docs/ariaid/errors/E021
//
// # Categories
//
//   - generation: ID allocation errors (empty component or purpose)
//   - hydration: server/client ID mismatches and non-deterministic IDs
//   - accessibility: duplicate IDs and dangling ARIA references
//   - config: configuration file errors
//   - cli: command-line usage and input errors
package errors
