package a11y

// DialogOptions describes a dialog and its optional title and description.
type DialogOptions struct {
	Component string
	Key       string

	Title       string
	Description string

	// NonModal sets aria-modal="false".
	NonModal bool
}

// DialogAttrs holds the attributes for the dialog and its title and
// description elements. Title and Description are nil when the matching
// option was empty.
type DialogAttrs struct {
	Dialog      Attrs
	Title       Attrs
	Description Attrs
}

// Dialog wires role, aria-modal and the label and description references.
func Dialog(src IDSource, opts DialogOptions) (DialogAttrs, error) {
	dialogID, err := src.Generate(opts.Component, "dialog", keyOpts(opts.Key)...)
	if err != nil {
		return DialogAttrs{}, err
	}

	out := DialogAttrs{
		Dialog: Attrs{
			"id":         dialogID,
			"role":       "dialog",
			"aria-modal": boolString(!opts.NonModal),
		},
	}

	if opts.Title != "" {
		titleID, err := src.Generate(opts.Component, "title", keyOpts(opts.Key)...)
		if err != nil {
			return DialogAttrs{}, err
		}
		out.Title = Attrs{"id": titleID}
		out.Dialog["aria-labelledby"] = titleID
	}
	if opts.Description != "" {
		descID, err := src.Generate(opts.Component, "description", keyOpts(opts.Key)...)
		if err != nil {
			return DialogAttrs{}, err
		}
		out.Description = Attrs{"id": descID}
		out.Dialog["aria-describedby"] = descID
	}

	return out, nil
}
