// Package ids provides deterministic, SSR-safe identifiers for HTML elements.
//
// Server rendering and client hydration must agree on every id, for, and
// aria-* reference in the markup. An Allocator hands out human-readable IDs
// whose only variable part is a counter, so two passes that issue the same
// calls in the same order produce byte-identical IDs.
//
// # Allocator
//
// Create one Allocator per render pass and thread it through the render,
// either explicitly or with WithAllocator / FromContext:
//
//	alloc := ids.New()
//	input, _ := alloc.Generate("Input", "field", ids.WithKey("email"))
//	// "ds-input-field-1"
//
// Requests carrying an instance key are cached: asking again for the same
// component, purpose and key returns the same ID without advancing a counter.
// Reset clears all state and must run at the start of every server render,
// never during hydration.
//
// # Bundles
//
// FormFieldIDs, AriaIDs and ComplexComponentIDs generate related sets of IDs
// in one call. ComponentGenerator scopes numbering to a single component
// instance so siblings sharing a component name never collide.
//
// # Auditing
//
// Validate and Inspect flag IDs that look non-deterministic: embedded
// random or clock calls, UUIDs, ISO timestamps and 13+ digit numbers.
package ids
