package a11y

import "github.com/vango-dev/ariaid/pkg/ids"

// FormFieldOptions describes one form field.
type FormFieldOptions struct {
	// Component is the owning component name, e.g. "Input".
	Component string

	// Field is the field name, used as the instance key. Optional.
	Field string

	// HasError adds the error message to aria-describedby and sets
	// aria-invalid="true".
	HasError bool

	Required bool
	Disabled bool
	ReadOnly bool
}

// FormFieldAttrs holds the attributes for every element of a form field.
type FormFieldAttrs struct {
	IDs ids.FormFieldIDs

	Field    Attrs
	Label    Attrs
	Input    Attrs
	Error    Attrs
	HelpText Attrs
}

// FormField wires label, input, error and help text of one field.
func FormField(src IDSource, opts FormFieldOptions) (FormFieldAttrs, error) {
	fieldIDs, err := src.FormFieldIDs(opts.Component, opts.Field)
	if err != nil {
		return FormFieldAttrs{}, err
	}

	errorID := ""
	if opts.HasError {
		errorID = fieldIDs.Error
	}

	input := Attrs{
		"id":               fieldIDs.Input,
		"aria-labelledby":  fieldIDs.Label,
		"aria-describedby": joinIDs(errorID, fieldIDs.HelpText),
		"aria-invalid":     boolString(opts.HasError),
	}
	setTrue(input, "aria-required", opts.Required)
	setTrue(input, "aria-disabled", opts.Disabled)
	setTrue(input, "aria-readonly", opts.ReadOnly)

	return FormFieldAttrs{
		IDs:   fieldIDs,
		Field: Attrs{"id": fieldIDs.Field},
		Label: Attrs{
			"id":  fieldIDs.Label,
			"for": fieldIDs.Input,
		},
		Input: input,
		Error: Attrs{
			"id":        fieldIDs.Error,
			"role":      "alert",
			"aria-live": "polite",
		},
		HelpText: Attrs{"id": fieldIDs.HelpText},
	}, nil
}
