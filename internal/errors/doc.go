// Package errors provides structured, coded errors for litkit.
//
// Every error has a code (e.g., "E001") that maps to a category, a short
// message, a longer explanation and a documentation URL. Codes are stable:
// widgets and tools match on them rather than on message text.
//
// # Categories
//
//   - widget: misuse of the widget API (nil handlers, use before mount)
//   - surface: failures reported by a rendering surface
//   - config: project configuration errors
//   - cli: command-line errors
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetail(`event "viewTypeChange"`).
//	    WithSuggestion("Pass a non-nil handler to bus.On")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Invalid event handler
//	//
//	//   event "viewTypeChange"
//	//
//	//   Hint: Pass a non-nil handler to bus.On
//	//
//	//   Learn more: https://litkit.dev/docs/errors/E001
package errors
