package showcase

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/ariaid/pkg/audit"
	"github.com/vango-dev/ariaid/pkg/ids"
	"github.com/vango-dev/ariaid/pkg/render"
)

func renderPage(t *testing.T, alloc *ids.Allocator, opts Options) string {
	t.Helper()
	page, err := Build(alloc, opts)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(page)
	if err != nil {
		t.Fatalf("RenderToString() error: %v", err)
	}
	return out
}

func TestPageIsDeterministic(t *testing.T) {
	serverAlloc, clientAlloc := ids.New(), ids.New()
	server := renderPage(t, serverAlloc, DefaultOptions())
	client := renderPage(t, clientAlloc, DefaultOptions())

	if diff := cmp.Diff(server, client); diff != "" {
		t.Fatalf("renders differ (-server +client):\n%s", diff)
	}
	if m := audit.CompareRecords(serverAlloc.Records(), clientAlloc.Records()); len(m) != 0 {
		t.Fatalf("CompareRecords() = %v, want none", m)
	}
}

func TestPageIDs(t *testing.T) {
	alloc := ids.New()
	renderPage(t, alloc, DefaultOptions())

	got := alloc.IDs()
	if len(got) != 30 {
		t.Fatalf("issued %d IDs, want 30", len(got))
	}
	if got[0] != "ds-signup-field-1" || got[1] != "ds-signup-input-2" {
		t.Fatalf("first IDs = %v", got[:2])
	}
}

func TestPagePassesAudit(t *testing.T) {
	for _, showErrors := range []bool{false, true} {
		opts := DefaultOptions()
		opts.ShowErrors = showErrors

		report, err := audit.String(renderPage(t, ids.New(), opts))
		if err != nil {
			t.Fatalf("audit.String() error: %v", err)
		}
		if !report.OK() {
			t.Fatalf("showErrors=%v: audit issues: %v", showErrors, report.Issues)
		}
		if len(report.IDs) == 0 {
			t.Fatal("expected the audit to see IDs")
		}
	}
}

func TestPageShowErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowErrors = true
	out := renderPage(t, ids.New(), opts)

	for _, want := range []string{
		`aria-describedby="ds-signup-error-4 ds-signup-help-text-5"`,
		`aria-invalid="true"`,
		`role="alert"`,
		"Enter a valid email address.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	clean := renderPage(t, ids.New(), DefaultOptions())
	if strings.Contains(clean, `role="alert"`) {
		t.Error("error messages rendered without ShowErrors")
	}
	if !strings.Contains(clean, `aria-invalid="false"`) {
		t.Error(`expected aria-invalid="false" on valid fields`)
	}
}

func TestPageWidgets(t *testing.T) {
	out := renderPage(t, ids.New(), DefaultOptions())
	for _, want := range []string{
		`aria-haspopup="listbox"`,
		`aria-expanded="false"`,
		`aria-multiselectable="true"`,
		`role="option"`,
		`aria-haspopup="dialog"`,
		`role="dialog"`,
		`aria-modal="true"`,
		`<form method="post" novalidate>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

// failingSource fails every call after the first n.
type failingSource struct {
	*ids.Allocator
	n int
}

var errSourceDown = errors.New("source down")

func (f *failingSource) tick() error {
	if f.n == 0 {
		return errSourceDown
	}
	f.n--
	return nil
}

func (f *failingSource) Generate(component, purpose string, opts ...ids.GenOption) (string, error) {
	if err := f.tick(); err != nil {
		return "", err
	}
	return f.Allocator.Generate(component, purpose, opts...)
}

func (f *failingSource) FormFieldIDs(component, field string) (ids.FormFieldIDs, error) {
	if err := f.tick(); err != nil {
		return ids.FormFieldIDs{}, err
	}
	return f.Allocator.FormFieldIDs(component, field)
}

func (f *failingSource) AriaIDs(component, element, key string) (ids.AriaIDs, error) {
	if err := f.tick(); err != nil {
		return ids.AriaIDs{}, err
	}
	return f.Allocator.AriaIDs(component, element, key)
}

func TestBuildPropagatesErrors(t *testing.T) {
	for n := 0; n < 8; n++ {
		src := &failingSource{Allocator: ids.New(), n: n}
		if _, err := Build(src, DefaultOptions()); !errors.Is(err, errSourceDown) {
			t.Fatalf("n=%d: Build() error = %v, want %v", n, err, errSourceDown)
		}
	}
}
