package audit

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/ariaid/pkg/ids"
)

// IssueKind classifies an audit finding.
type IssueKind string

const (
	IssueNondeterministic IssueKind = "nondeterministic"
	IssueDuplicate        IssueKind = "duplicate"
	IssueDangling         IssueKind = "dangling-reference"
)

// Issue is one finding.
type Issue struct {
	Kind IssueKind `json:"kind"`

	// ID is the offending element ID or the missing reference target.
	ID string `json:"id"`

	// Tag and Attr locate the element and attribute that carried the value.
	Tag  string `json:"tag"`
	Attr string `json:"attr"`

	Detail string `json:"detail,omitempty"`
}

// String formats the issue for terminal output.
func (i Issue) String() string {
	s := fmt.Sprintf("%s: <%s %s=%q>", i.Kind, i.Tag, i.Attr, i.ID)
	if i.Detail != "" {
		s += " " + i.Detail
	}
	return s
}

// Report is the result of auditing one document.
type Report struct {
	// IDs lists every element id attribute in document order.
	IDs []string `json:"ids"`

	Issues []Issue `json:"issues"`
}

// OK reports whether the document has no issues.
func (r *Report) OK() bool { return len(r.Issues) == 0 }

// Count returns the number of issues of kind.
func (r *Report) Count(kind IssueKind) int {
	n := 0
	for _, i := range r.Issues {
		if i.Kind == kind {
			n++
		}
	}
	return n
}

// Kinds returns issue counts per kind.
func (r *Report) Kinds() map[IssueKind]int {
	out := make(map[IssueKind]int)
	for _, i := range r.Issues {
		out[i.Kind]++
	}
	return out
}

// referenceAttrs hold one or more space-separated element IDs.
var referenceAttrs = []string{
	"aria-activedescendant",
	"aria-controls",
	"aria-describedby",
	"aria-details",
	"aria-errormessage",
	"aria-flowto",
	"aria-labelledby",
	"aria-owns",
}

type reference struct {
	tag, attr, target string
}

// HTML parses r and audits it.
func HTML(r io.Reader) (*Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("audit: parse html: %w", err)
	}
	return Document(doc), nil
}

// String audits an HTML string.
func String(s string) (*Report, error) {
	return HTML(strings.NewReader(s))
}

// Document audits an already parsed tree.
func Document(doc *html.Node) *Report {
	report := &Report{IDs: []string{}, Issues: []Issue{}}
	counts := make(map[string]int)
	firstTag := make(map[string]string)
	var refs []reference

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id, ok := getAttr(n, "id"); ok {
				report.IDs = append(report.IDs, id)
				counts[id]++
				if counts[id] == 1 {
					firstTag[id] = n.Data
				}
				for _, v := range ids.Inspect(id) {
					report.Issues = append(report.Issues, Issue{
						Kind:   IssueNondeterministic,
						ID:     id,
						Tag:    n.Data,
						Attr:   "id",
						Detail: describeViolation(v),
					})
				}
			}
			for _, name := range referenceAttrs {
				if v, ok := getAttr(n, name); ok {
					for _, target := range strings.Fields(v) {
						refs = append(refs, reference{tag: n.Data, attr: name, target: target})
					}
				}
			}
			if n.Data == "label" {
				if v, ok := getAttr(n, "for"); ok && v != "" {
					refs = append(refs, reference{tag: n.Data, attr: "for", target: v})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	dups := make([]string, 0)
	for id, n := range counts {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Strings(dups)
	for _, id := range dups {
		report.Issues = append(report.Issues, Issue{
			Kind:   IssueDuplicate,
			ID:     id,
			Tag:    firstTag[id],
			Attr:   "id",
			Detail: fmt.Sprintf("used %d times", counts[id]),
		})
	}

	for _, ref := range refs {
		if counts[ref.target] == 0 {
			report.Issues = append(report.Issues, Issue{
				Kind:   IssueDangling,
				ID:     ref.target,
				Tag:    ref.tag,
				Attr:   ref.attr,
				Detail: "no element has this id",
			})
		}
	}

	return report
}

func describeViolation(v ids.Violation) string {
	if v.Match == "" {
		return string(v.Kind)
	}
	return fmt.Sprintf("%s (%q)", v.Kind, v.Match)
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
