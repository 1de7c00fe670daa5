package a11y

import "github.com/vango-dev/ariaid/pkg/ids"

// DefaultElement is the element name used when InteractiveOptions.Element is
// empty.
const DefaultElement = "element"

// InteractiveOptions describes a button-like element that may toggle or open
// another element.
type InteractiveOptions struct {
	Component string
	Element   string
	Key       string

	// Pressed and Expanded are omitted when nil.
	Pressed  *bool
	Expanded *bool

	HasPopup Popup

	// Controls overrides the generated aria-controls target.
	Controls string
}

// InteractiveAttrs holds the attributes for the element and the element it
// controls.
type InteractiveAttrs struct {
	IDs ids.AriaIDs

	Element     Attrs
	Controlled  Attrs
	Label       Attrs
	Description Attrs
}

// Interactive wires aria-pressed, aria-expanded, aria-haspopup and
// aria-controls for one element.
func Interactive(src IDSource, opts InteractiveOptions) (InteractiveAttrs, error) {
	element := opts.Element
	if element == "" {
		element = DefaultElement
	}
	aria, err := src.AriaIDs(opts.Component, element, opts.Key)
	if err != nil {
		return InteractiveAttrs{}, err
	}

	controls := aria.Controls
	if opts.Controls != "" {
		controls = opts.Controls
	}

	el := Attrs{
		"id":            aria.Element,
		"aria-controls": controls,
	}
	setTri(el, "aria-pressed", opts.Pressed)
	setTri(el, "aria-expanded", opts.Expanded)
	switch opts.HasPopup {
	case "", PopupFalse:
	default:
		el["aria-haspopup"] = string(opts.HasPopup)
	}

	return InteractiveAttrs{
		IDs:         aria,
		Element:     el,
		Controlled:  Attrs{"id": controls},
		Label:       Attrs{"id": aria.LabelledBy},
		Description: Attrs{"id": aria.DescribedBy},
	}, nil
}
