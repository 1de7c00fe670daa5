package ids

// Form field purposes, in generation order.
const (
	PurposeField    = "field"
	PurposeInput    = "input"
	PurposeLabel    = "label"
	PurposeError    = "error"
	PurposeHelpText = "help-text"
)

// FormFieldIDs holds the five related IDs of one form field.
type FormFieldIDs struct {
	Field    string `json:"field"`
	Input    string `json:"input"`
	Label    string `json:"label"`
	Error    string `json:"error"`
	HelpText string `json:"helpText"`
}

// AriaIDs holds the IDs needed to wire one interactive element's ARIA
// relationships.
type AriaIDs struct {
	Element     string `json:"element"`
	LabelledBy  string `json:"labelledBy"`
	DescribedBy string `json:"describedBy"`
	Controls    string `json:"controls"`
}

// FormFieldIDs generates the field, input, label, error and help-text IDs for
// one form field. fieldName is the instance key; when set, repeated calls
// return the same bundle.
func (a *Allocator) FormFieldIDs(component, fieldName string) (FormFieldIDs, error) {
	return formFieldIDs(a.Generate, component, fieldName)
}

// AriaIDs generates the element, label, description and controls IDs for
// element within component.
func (a *Allocator) AriaIDs(component, element, key string) (AriaIDs, error) {
	return ariaIDs(a.Generate, component, element, key)
}

// ComplexComponentIDs generates one ID per element name, for components with
// an open-ended set of sub-parts. Elements are generated in slice order.
func (a *Allocator) ComplexComponentIDs(component string, elements []string, key string) (map[string]string, error) {
	out := make(map[string]string, len(elements))
	for _, el := range elements {
		id, err := a.Generate(component, el, keyOption(key))
		if err != nil {
			return nil, err
		}
		out[el] = id
	}
	return out, nil
}

type generateFunc func(component, purpose string, opts ...GenOption) (string, error)

func formFieldIDs(gen generateFunc, component, fieldName string) (FormFieldIDs, error) {
	var out FormFieldIDs
	targets := []struct {
		purpose string
		dst     *string
	}{
		{PurposeField, &out.Field},
		{PurposeInput, &out.Input},
		{PurposeLabel, &out.Label},
		{PurposeError, &out.Error},
		{PurposeHelpText, &out.HelpText},
	}
	for _, t := range targets {
		id, err := gen(component, t.purpose, keyOption(fieldName))
		if err != nil {
			return FormFieldIDs{}, err
		}
		*t.dst = id
	}
	return out, nil
}

func ariaIDs(gen generateFunc, component, element, key string) (AriaIDs, error) {
	if normalize(element) == "" {
		return AriaIDs{}, ErrEmptyPurpose
	}
	var out AriaIDs
	targets := []struct {
		purpose string
		dst     *string
	}{
		{element, &out.Element},
		{element + "-label", &out.LabelledBy},
		{element + "-description", &out.DescribedBy},
		{element + "-controls", &out.Controls},
	}
	for _, t := range targets {
		id, err := gen(component, t.purpose, keyOption(key))
		if err != nil {
			return AriaIDs{}, err
		}
		*t.dst = id
	}
	return out, nil
}

// keyOption returns WithKey(key), or a no-op for an empty key.
func keyOption(key string) GenOption {
	if key == "" {
		return func(*genRequest) {}
	}
	return WithKey(key)
}
