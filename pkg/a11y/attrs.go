package a11y

import (
	"strings"

	"github.com/vango-dev/ariaid/pkg/ids"
)

// Attrs maps attribute names to values. It is an alias so it can be passed
// anywhere a map[string]string is accepted, including render.El.
type Attrs = map[string]string

// IDSource supplies IDs to the helpers. *ids.Allocator satisfies it.
type IDSource interface {
	Generate(component, purpose string, opts ...ids.GenOption) (string, error)
	FormFieldIDs(component, fieldName string) (ids.FormFieldIDs, error)
	AriaIDs(component, element, key string) (ids.AriaIDs, error)
}

// Popup is the aria-haspopup value. The empty value and PopupFalse omit the
// attribute.
type Popup string

const (
	PopupFalse   Popup = "false"
	PopupTrue    Popup = "true"
	PopupMenu    Popup = "menu"
	PopupListbox Popup = "listbox"
	PopupTree    Popup = "tree"
	PopupGrid    Popup = "grid"
	PopupDialog  Popup = "dialog"
)

// Bool returns a pointer to b, for the tri-state options.
func Bool(b bool) *bool { return &b }

// Merge copies every entry of src into dst, overwriting existing keys, and
// returns dst. A nil dst is allocated.
func Merge(dst Attrs, src ...Attrs) Attrs {
	if dst == nil {
		dst = make(Attrs)
	}
	for _, m := range src {
		for k, v := range m {
			dst[k] = v
		}
	}
	return dst
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// setTrue sets name to "true" when b is set and leaves it absent otherwise.
func setTrue(a Attrs, name string, b bool) {
	if b {
		a[name] = "true"
	}
}

// setTri sets name from a tri-state value; nil leaves it absent.
func setTri(a Attrs, name string, b *bool) {
	if b != nil {
		a[name] = boolString(*b)
	}
}

// joinIDs space-joins the non-empty IDs.
func joinIDs(list ...string) string {
	out := make([]string, 0, len(list))
	for _, id := range list {
		if id != "" {
			out = append(out, id)
		}
	}
	return strings.Join(out, " ")
}

func keyOpts(key string) []ids.GenOption {
	if key == "" {
		return nil
	}
	return []ids.GenOption{ids.WithKey(key)}
}
