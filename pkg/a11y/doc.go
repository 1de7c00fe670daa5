// Package a11y builds ARIA attribute sets from deterministic element IDs.
//
// Each helper takes an IDSource (normally an *ids.Allocator) and returns
// plain attribute maps ready to splice onto rendered elements. Helpers hold
// no state of their own; every ID comes from the source, so a server render
// and a hydration pass that call the helpers in the same order produce the
// same attributes.
//
//	f, err := a11y.FormField(alloc, a11y.FormFieldOptions{
//	    Component: "Input",
//	    Field:     "email",
//	    HasError:  true,
//	})
//	// f.Label    -> {"id": ..., "for": <input id>}
//	// f.Input    -> {"id": ..., "aria-labelledby": ..., "aria-describedby": "<error> <help>", "aria-invalid": "true"}
//
// Boolean attributes follow two rules: aria-invalid on form inputs is always
// emitted as "true" or "false"; aria-required, aria-disabled and
// aria-readonly are emitted as "true" when set and omitted otherwise.
package a11y
