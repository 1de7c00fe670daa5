package a11y

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/ariaid/pkg/ids"
)

func TestInteractive(t *testing.T) {
	tests := []struct {
		name string
		opts InteractiveOptions
		want Attrs
	}{
		{
			name: "defaults",
			opts: InteractiveOptions{Component: "Button"},
			want: Attrs{
				"id":            "ds-button-element-1",
				"aria-controls": "ds-button-element-controls-4",
			},
		},
		{
			name: "menu trigger",
			opts: InteractiveOptions{
				Component: "Menu",
				Element:   "trigger",
				Expanded:  Bool(false),
				HasPopup:  PopupMenu,
			},
			want: Attrs{
				"id":            "ds-menu-trigger-1",
				"aria-controls": "ds-menu-trigger-controls-4",
				"aria-expanded": "false",
				"aria-haspopup": "menu",
			},
		},
		{
			name: "toggle with override",
			opts: InteractiveOptions{
				Component: "Toggle",
				Element:   "button",
				Pressed:   Bool(true),
				HasPopup:  PopupTrue,
				Controls:  "panel-main",
			},
			want: Attrs{
				"id":            "ds-toggle-button-1",
				"aria-controls": "panel-main",
				"aria-pressed":  "true",
				"aria-haspopup": "true",
			},
		},
		{
			name: "popup false omitted",
			opts: InteractiveOptions{Component: "Button", HasPopup: PopupFalse},
			want: Attrs{
				"id":            "ds-button-element-1",
				"aria-controls": "ds-button-element-controls-4",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interactive(ids.New(), tt.opts)
			if err != nil {
				t.Fatalf("Interactive() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Element); diff != "" {
				t.Errorf("Element mismatch (-want +got):\n%s", diff)
			}
			if got.Controlled["id"] != got.Element["aria-controls"] {
				t.Errorf("Controlled id = %q, aria-controls = %q", got.Controlled["id"], got.Element["aria-controls"])
			}
		})
	}
}

func TestInteractiveLabelAndDescription(t *testing.T) {
	got, err := Interactive(ids.New(), InteractiveOptions{Component: "Menu", Element: "trigger", Key: "main"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Label["id"] != got.IDs.LabelledBy || got.Description["id"] != got.IDs.DescribedBy {
		t.Errorf("label/description attrs = %v / %v, ids = %+v", got.Label, got.Description, got.IDs)
	}
}
