// Package render turns element trees into HTML for server-side rendering.
//
// Trees are built with El, Text and Fragment. El accepts attribute maps
// (including a11y.Attrs), single Attr values, child nodes and slices of child
// nodes, so ARIA bundles splice straight onto elements:
//
//	f, _ := a11y.FormField(alloc, a11y.FormFieldOptions{Component: "Input", Field: "email"})
//	node := render.El("div", f.Field,
//	    render.El("label", f.Label, render.Text("Email")),
//	    render.El("input", f.Input, render.Attr{Key: "type", Value: "email"}),
//	)
//
// Attributes are written in sorted order, so identical trees always render to
// identical bytes.
package render
