package a11y

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/ariaid/pkg/ids"
)

func TestCollectionList(t *testing.T) {
	got, err := Collection(ids.New(), CollectionOptions{
		Component: "List",
		Items:     []CollectionItem{{}, {}},
	})
	if err != nil {
		t.Fatalf("Collection() error = %v", err)
	}

	want := CollectionAttrs{
		Container: Attrs{"id": "ds-list-list-1", "role": "list"},
		Items: []Attrs{
			{"id": "ds-list-item-2", "role": "listitem", "aria-setsize": "2", "aria-posinset": "1"},
			{"id": "ds-list-item-3", "role": "listitem", "aria-setsize": "2", "aria-posinset": "2"},
		},
		ItemIDs: []string{"ds-list-item-2", "ds-list-item-3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collection mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionListbox(t *testing.T) {
	got, err := Collection(ids.New(), CollectionOptions{
		Component:   "Select",
		Key:         "country",
		Multiselect: true,
		Label:       "Countries",
		Items: []CollectionItem{
			{Key: "ca"},
			{Key: "fr", Selected: true},
			{Key: "jp", Selected: true, Disabled: true},
		},
	})
	if err != nil {
		t.Fatalf("Collection() error = %v", err)
	}

	if got.Container["role"] != "listbox" || got.Container["aria-multiselectable"] != "true" {
		t.Errorf("Container = %v", got.Container)
	}
	if got.Container["aria-label"] != "Countries" {
		t.Errorf("aria-label = %q", got.Container["aria-label"])
	}
	if got.Container["aria-activedescendant"] != got.ItemIDs[1] {
		t.Errorf("aria-activedescendant = %q, want first selected %q", got.Container["aria-activedescendant"], got.ItemIDs[1])
	}

	for i, item := range got.Items {
		if item["role"] != "option" {
			t.Errorf("item %d role = %q", i, item["role"])
		}
		if item["aria-setsize"] != "3" {
			t.Errorf("item %d aria-setsize = %q", i, item["aria-setsize"])
		}
	}
	if got.Items[0]["aria-selected"] != "false" || got.Items[1]["aria-selected"] != "true" {
		t.Errorf("aria-selected = %q, %q", got.Items[0]["aria-selected"], got.Items[1]["aria-selected"])
	}
	if got.Items[2]["aria-disabled"] != "true" {
		t.Errorf("aria-disabled = %q", got.Items[2]["aria-disabled"])
	}
	if _, ok := got.Items[0]["aria-disabled"]; ok {
		t.Error("aria-disabled should be omitted for enabled items")
	}
}

func TestCollectionKeyedIsCached(t *testing.T) {
	a := ids.New()
	opts := CollectionOptions{
		Component: "Select",
		Key:       "country",
		Items:     []CollectionItem{{Key: "ca"}, {Key: "fr"}},
	}

	first, err := Collection(a, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Collection(a, opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("keyed collection not stable (-first +second):\n%s", diff)
	}
	if a.Stats().Counter != 3 {
		t.Errorf("Counter = %d, want 3", a.Stats().Counter)
	}
}

func TestCollectionMixedKeysDistinct(t *testing.T) {
	got, err := Collection(ids.New(), CollectionOptions{
		Component: "Menu",
		Key:       "main",
		Items:     []CollectionItem{{Key: "1"}, {}, {Key: "#0"}, {}},
	})
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]int)
	for i, id := range got.ItemIDs {
		if prev, ok := seen[id]; ok {
			t.Errorf("items %d and %d share ID %q", prev, i, id)
		}
		seen[id] = i
	}
	if len(seen) != 4 {
		t.Errorf("distinct item IDs = %d, want 4 (%v)", len(seen), got.ItemIDs)
	}
}

func TestCollectionNoSelection(t *testing.T) {
	got, err := Collection(ids.New(), CollectionOptions{Component: "Select", Multiselect: true, Items: []CollectionItem{{}}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.Container["aria-activedescendant"]; ok {
		t.Error("aria-activedescendant should be omitted without a selection")
	}
}
