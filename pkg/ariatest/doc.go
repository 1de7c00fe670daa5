// Package ariatest provides testing helpers for components that take their
// IDs from an ids.Allocator.
//
// # Quick Start
//
//	func TestSignupForm(t *testing.T) {
//	    ariatest.ExpectHydrates(t, func(a *ids.Allocator) (*render.Node, error) {
//	        return SignupForm(a)
//	    })
//	}
//
// # Hydration
//
// ExpectHydrates renders a component twice, each time with a fresh
// allocator, the way a server render and a client hydration pass would.
// Both passes must hand out the same IDs in the same order and produce the
// same markup.
//
//	res, err := ariatest.SimulateHydration(build, ids.WithConfig(cfg))
//	if len(res.Mismatches) > 0 {
//	    t.Errorf("ids drifted: %v", res.Mismatches)
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	ariatest.ExpectAttribute(t, node, "aria-invalid", "true")
//	ariatest.ExpectNotContains(t, node, `role="alert"`)
//
// # Accessibility
//
// ExpectAccessible audits the rendered node for duplicate IDs, dangling
// label and aria-* references, and IDs that look random or time-derived:
//
//	ariatest.ExpectAccessible(t, node)
package ariatest
