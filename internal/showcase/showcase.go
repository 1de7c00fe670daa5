// Package showcase builds the demo sign-up page served by "ariaid serve".
//
// Every ID on the page comes from the IDSource passed to Page, so two
// renders with fresh allocators produce identical markup.
package showcase

import (
	"slices"

	"github.com/vango-dev/ariaid/pkg/a11y"
	"github.com/vango-dev/ariaid/pkg/render"
)

// Title is the document title of the page.
const Title = "Create your account"

// Field describes one input of the sign-up form.
type Field struct {
	Name     string
	Label    string
	Type     string
	Help     string
	Error    string
	Required bool
}

// Addon is one entry of the add-on listbox.
type Addon struct {
	Key   string
	Label string
}

// Options controls page content.
type Options struct {
	Fields []Field
	Addons []Addon

	// Selected lists the keys of the initially selected add-ons.
	Selected []string

	// ShowErrors renders each field's Error message as if validation failed.
	ShowErrors bool
}

// DefaultOptions returns the content of the demo page.
func DefaultOptions() Options {
	return Options{
		Fields: []Field{
			{Name: "email", Label: "Email", Type: "email", Help: "We never share your email.", Error: "Enter a valid email address.", Required: true},
			{Name: "password", Label: "Password", Type: "password", Help: "At least 12 characters.", Error: "Password is too short.", Required: true},
			{Name: "display-name", Label: "Display name", Type: "text", Help: "Shown on your profile."},
		},
		Addons: []Addon{
			{Key: "newsletter", Label: "Monthly newsletter"},
			{Key: "backups", Label: "Daily backups"},
			{Key: "support", Label: "Priority support"},
		},
		Selected: []string{"backups"},
	}
}

// Page renders the sign-up page body with DefaultOptions.
func Page(src a11y.IDSource) (*render.Node, error) {
	return Build(src, DefaultOptions())
}

// Build renders the sign-up page body.
func Build(src a11y.IDSource, opts Options) (*render.Node, error) {
	fields := make([]*render.Node, 0, len(opts.Fields))
	for _, f := range opts.Fields {
		n, err := field(src, f, opts.ShowErrors)
		if err != nil {
			return nil, err
		}
		fields = append(fields, n)
	}

	picker, err := addons(src, opts.Addons, opts.Selected)
	if err != nil {
		return nil, err
	}

	terms, err := termsDialog(src)
	if err != nil {
		return nil, err
	}

	return render.El("main",
		render.El("h1", render.Text(Title)),
		render.El("form", render.Attr{Key: "method", Value: "post"}, render.Attr{Key: "novalidate", Value: "true"},
			fields,
			picker,
			render.El("button", render.Attr{Key: "type", Value: "submit"}, render.Text("Sign up")),
		),
		terms,
	), nil
}

func field(src a11y.IDSource, f Field, showErrors bool) (*render.Node, error) {
	hasError := showErrors && f.Error != ""
	attrs, err := a11y.FormField(src, a11y.FormFieldOptions{
		Component: "signup",
		Field:     f.Name,
		HasError:  hasError,
		Required:  f.Required,
	})
	if err != nil {
		return nil, err
	}

	input := a11y.Merge(a11y.Attrs{"name": f.Name, "type": f.Type}, attrs.Input)
	if f.Required {
		input["required"] = "true"
	}

	var errNode *render.Node
	if hasError {
		errNode = render.El("p", attrs.Error, render.Text(f.Error))
	}

	return render.El("div", a11y.Merge(a11y.Attrs{"class": "field"}, attrs.Field),
		render.El("label", attrs.Label, render.Text(f.Label)),
		render.El("input", input),
		render.El("p", a11y.Merge(a11y.Attrs{"class": "help"}, attrs.HelpText), render.Text(f.Help)),
		errNode,
	), nil
}

// addons renders a button that toggles a multi-select listbox of add-ons.
func addons(src a11y.IDSource, list []Addon, selected []string) (*render.Node, error) {
	items := make([]a11y.CollectionItem, len(list))
	for i, a := range list {
		items[i] = a11y.CollectionItem{Key: a.Key, Selected: slices.Contains(selected, a.Key)}
	}
	coll, err := a11y.Collection(src, a11y.CollectionOptions{
		Component:   "addon-picker",
		Key:         "addons",
		Items:       items,
		Multiselect: true,
		Label:       "Add-ons",
	})
	if err != nil {
		return nil, err
	}

	trigger, err := a11y.Interactive(src, a11y.InteractiveOptions{
		Component: "addon-picker",
		Element:   "trigger",
		Key:       "addons",
		Expanded:  a11y.Bool(false),
		HasPopup:  a11y.PopupListbox,
		Controls:  coll.Container["id"],
	})
	if err != nil {
		return nil, err
	}

	options := make([]*render.Node, len(list))
	for i, a := range list {
		options[i] = render.El("li", coll.Items[i], render.Text(a.Label))
	}

	return render.El("div", a11y.Attrs{"class": "addon-picker"},
		render.El("button", a11y.Merge(a11y.Attrs{"type": "button"}, trigger.Element), render.Text("Choose add-ons")),
		render.El("ul", a11y.Merge(a11y.Attrs{"hidden": "true"}, coll.Container), options),
	), nil
}

func termsDialog(src a11y.IDSource) (*render.Node, error) {
	dlg, err := a11y.Dialog(src, a11y.DialogOptions{
		Component:   "terms",
		Key:         "terms",
		Title:       "Terms of service",
		Description: "Please read the terms before signing up.",
	})
	if err != nil {
		return nil, err
	}

	trigger, err := a11y.Interactive(src, a11y.InteractiveOptions{
		Component: "terms",
		Element:   "open",
		Key:       "terms",
		Pressed:   a11y.Bool(false),
		HasPopup:  a11y.PopupDialog,
		Controls:  dlg.Dialog["id"],
	})
	if err != nil {
		return nil, err
	}

	return render.Fragment(
		render.El("button", a11y.Merge(a11y.Attrs{"type": "button"}, trigger.Element), render.Text("Read the terms")),
		render.El("div", a11y.Merge(a11y.Attrs{"hidden": "true"}, dlg.Dialog),
			render.El("h2", dlg.Title, render.Text("Terms of service")),
			render.El("p", dlg.Description, render.Text("Please read the terms before signing up.")),
		),
	), nil
}
