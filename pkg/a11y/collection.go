package a11y

import "strconv"

// CollectionItem is one entry of a list or listbox.
type CollectionItem struct {
	// Key identifies the item within a keyed collection. Optional; the
	// position is used when empty.
	Key      string
	Selected bool
	Disabled bool
}

// CollectionOptions describes a list of items.
type CollectionOptions struct {
	Component string

	// Key caches the container and item IDs when set.
	Key string

	Items []CollectionItem

	// Multiselect renders a listbox of options instead of a list of items.
	Multiselect bool

	// Label sets aria-label on the container when non-empty.
	Label string
}

// CollectionAttrs holds the container attributes and one attribute set per
// item, in item order.
type CollectionAttrs struct {
	Container Attrs
	Items     []Attrs
	ItemIDs   []string
}

// Collection wires roles, set size, positions and the active descendant.
func Collection(src IDSource, opts CollectionOptions) (CollectionAttrs, error) {
	containerID, err := src.Generate(opts.Component, "list", keyOpts(opts.Key)...)
	if err != nil {
		return CollectionAttrs{}, err
	}

	containerRole, itemRole := "list", "listitem"
	if opts.Multiselect {
		containerRole, itemRole = "listbox", "option"
	}

	out := CollectionAttrs{
		Container: Attrs{
			"id":   containerID,
			"role": containerRole,
		},
		Items:   make([]Attrs, 0, len(opts.Items)),
		ItemIDs: make([]string, 0, len(opts.Items)),
	}
	if opts.Multiselect {
		out.Container["aria-multiselectable"] = "true"
	}
	if opts.Label != "" {
		out.Container["aria-label"] = opts.Label
	}

	size := strconv.Itoa(len(opts.Items))
	active := ""
	for i, item := range opts.Items {
		key := ""
		if opts.Key != "" {
			// Positional keys get their own namespace so an unkeyed item
			// never shares a cache entry with an item keyed "1".
			itemKey := "=" + item.Key
			if item.Key == "" {
				itemKey = "#" + strconv.Itoa(i)
			}
			key = opts.Key + "/" + itemKey
		}
		id, err := src.Generate(opts.Component, "item", keyOpts(key)...)
		if err != nil {
			return CollectionAttrs{}, err
		}

		attrs := Attrs{
			"id":            id,
			"role":          itemRole,
			"aria-setsize":  size,
			"aria-posinset": strconv.Itoa(i + 1),
		}
		if opts.Multiselect {
			attrs["aria-selected"] = boolString(item.Selected)
		}
		setTrue(attrs, "aria-disabled", item.Disabled)

		if item.Selected && active == "" {
			active = id
		}
		out.Items = append(out.Items, attrs)
		out.ItemIDs = append(out.ItemIDs, id)
	}
	if active != "" {
		out.Container["aria-activedescendant"] = active
	}

	return out, nil
}
