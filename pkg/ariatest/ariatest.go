package ariatest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/ariaid/pkg/audit"
	"github.com/vango-dev/ariaid/pkg/ids"
	"github.com/vango-dev/ariaid/pkg/render"
)

// BuildFunc builds a component tree from an allocator.
type BuildFunc func(*ids.Allocator) (*render.Node, error)

// HydrationResult is the outcome of a simulated server and client render.
type HydrationResult struct {
	ServerHTML string
	ClientHTML string

	ServerIDs []string
	ClientIDs []string

	// Mismatches lists positions where the two ID sequences differ.
	Mismatches []audit.Mismatch
}

// OK reports whether both passes produced the same IDs and markup.
func (r HydrationResult) OK() bool {
	return len(r.Mismatches) == 0 && r.ServerHTML == r.ClientHTML
}

// SimulateHydration renders build twice, each with a fresh allocator created
// from opts, and compares the results.
func SimulateHydration(build BuildFunc, opts ...ids.Option) (HydrationResult, error) {
	server, serverIDs, err := renderPass(build, opts)
	if err != nil {
		return HydrationResult{}, fmt.Errorf("server render: %w", err)
	}
	client, clientIDs, err := renderPass(build, opts)
	if err != nil {
		return HydrationResult{}, fmt.Errorf("client render: %w", err)
	}
	return HydrationResult{
		ServerHTML: server,
		ClientHTML: client,
		ServerIDs:  serverIDs,
		ClientIDs:  clientIDs,
		Mismatches: audit.Compare(serverIDs, clientIDs),
	}, nil
}

func renderPass(build BuildFunc, opts []ids.Option) (string, []string, error) {
	alloc := ids.New(opts...)
	node, err := build(alloc)
	if err != nil {
		return "", nil, err
	}
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return "", nil, err
	}
	return html, alloc.IDs(), nil
}

// ExpectHydrates asserts that build renders identically in two passes.
//
// Example:
//
//	ariatest.ExpectHydrates(t, func(a *ids.Allocator) (*render.Node, error) {
//	    return Menu(a, items)
//	})
func ExpectHydrates(t testing.TB, build BuildFunc, opts ...ids.Option) {
	t.Helper()
	res, err := SimulateHydration(build, opts...)
	if err != nil {
		t.Fatalf("hydration: %v", err)
		return
	}
	for _, m := range res.Mismatches {
		t.Errorf("id %s at position %d: server %q, client %q", m.Kind, m.Position, m.Server, m.Client)
	}
	if len(res.Mismatches) == 0 && res.ServerHTML != res.ClientHTML {
		t.Errorf("markup differs between passes (-server +client):\n%s", cmp.Diff(res.ServerHTML, res.ClientHTML))
	}
}

// ExpectAccessible asserts that the rendered node passes the ID audit.
//
// Example:
//
//	ariatest.ExpectAccessible(t, SignupForm(alloc))
func ExpectAccessible(t testing.TB, node *render.Node) {
	t.Helper()
	report, err := audit.String(RenderToString(node))
	if err != nil {
		t.Fatalf("audit: %v", err)
		return
	}
	for _, issue := range report.Issues {
		t.Errorf("audit: %s", issue)
	}
}

// ExpectIDs asserts the IDs an allocator has handed out since its last reset.
//
// Example:
//
//	ariatest.ExpectIDs(t, alloc, "ds-field-field-1", "ds-field-input-2")
func ExpectIDs(t testing.TB, alloc *ids.Allocator, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, alloc.IDs()); diff != "" {
		t.Errorf("issued IDs mismatch (-want +got):\n%s", diff)
	}
}

// RenderToString renders a node and returns the HTML string. Render errors
// yield an empty string.
//
// Example:
//
//	html := ariatest.RenderToString(node)
func RenderToString(node *render.Node) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	ariatest.ExpectContains(t, node, "Email")
func ExpectContains(t testing.TB, node *render.Node, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *render.Node, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *render.Node, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	ariatest.ExpectAttribute(t, node, "aria-invalid", "false")
func ExpectAttribute(t testing.TB, node *render.Node, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
