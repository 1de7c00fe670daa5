package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/ariaid/internal/errors"
	"github.com/vango-dev/ariaid/pkg/audit"
)

const fetchTimeout = 30 * time.Second

type auditOutput struct {
	Source     string           `json:"source"`
	Report     *audit.Report    `json:"report"`
	Against    string           `json:"against,omitempty"`
	Mismatches []audit.Mismatch `json:"mismatches,omitempty"`
}

func (a *app) auditCmd() *cobra.Command {
	var (
		against string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "audit <file|url|->",
		Short: "Audit rendered HTML for ID problems",
		Long: `Audit a rendered HTML document.

The audit reports IDs that look non-deterministic, IDs used more than once,
and label or aria-* references to IDs that do not exist.

With --against, the IDs of both documents are compared in document order, as
a server render and a client render would be after hydration.

Examples:
  ariaid audit page.html
  ariaid audit http://localhost:3000/
  curl -s http://localhost:3000/ | ariaid audit -
  ariaid audit server.html --against client.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAudit(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args[0], against, asJSON)
		},
	}

	cmd.Flags().StringVar(&against, "against", "", "Second document to compare IDs with")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}

func (a *app) runAudit(ctx context.Context, stdin io.Reader, w io.Writer, source, against string, asJSON bool) error {
	ctx, span := otel.Tracer(serviceName).Start(ctx, "audit")
	defer span.End()

	report, err := auditSource(ctx, stdin, source)
	if err != nil {
		return err
	}
	out := auditOutput{Source: source, Report: report}

	if against != "" {
		other, err := auditSource(ctx, stdin, against)
		if err != nil {
			return err
		}
		out.Against = against
		out.Mismatches = audit.Compare(report.IDs, other.IDs)
	}

	span.SetAttributes(
		attribute.Int("ariaid.ids", len(report.IDs)),
		attribute.Int("ariaid.issues", len(report.Issues)),
		attribute.Int("ariaid.mismatches", len(out.Mismatches)),
	)
	a.logger.Debug("audit complete",
		"source", source,
		"ids", len(report.IDs),
		"issues", len(report.Issues),
		"mismatches", len(out.Mismatches))

	if asJSON {
		if err := writeJSON(w, out); err != nil {
			return err
		}
	} else {
		printAudit(w, out)
	}

	return a.auditVerdict(out)
}

func printAudit(w io.Writer, out auditOutput) {
	if out.Report.OK() {
		success(w, "%s: %d IDs, no issues", out.Source, len(out.Report.IDs))
	} else {
		failure(w, "%s: %d IDs, %d issues", out.Source, len(out.Report.IDs), len(out.Report.Issues))
		for _, issue := range out.Report.Issues {
			info(w, "%s", issue)
		}
	}

	if out.Against == "" {
		return
	}
	if len(out.Mismatches) == 0 {
		success(w, "%s matches %s", out.Against, out.Source)
		return
	}
	failure(w, "%s differs from %s in %d positions", out.Against, out.Source, len(out.Mismatches))
	for _, m := range out.Mismatches {
		info(w, "#%d %s: %q -> %q", m.Position, m.Kind, m.Server, m.Client)
	}
}

// auditVerdict fails on mismatches and on issue kinds listed in audit.failOn.
func (a *app) auditVerdict(out auditOutput) error {
	if len(out.Mismatches) > 0 {
		return errors.New("E013").
			WithFile(out.Against).
			WithSuggestion("Make sure both renders call the allocator in the same order")
	}

	var failing []string
	var kinds []audit.IssueKind
	for kind, n := range out.Report.Kinds() {
		if a.cfg.FailsOn(string(kind)) {
			failing = append(failing, fmt.Sprintf("%d %s", n, kind))
			kinds = append(kinds, kind)
		}
	}
	if len(failing) == 0 {
		return nil
	}
	slices.Sort(failing)

	code := "E152"
	if len(kinds) == 1 {
		code = issueCodes[kinds[0]]
	}
	return errors.New(code).
		WithFile(out.Source).
		WithDetail("Found " + strings.Join(failing, ", "))
}

// issueCodes maps an audit issue kind to the error reported when it is the
// only failing kind.
var issueCodes = map[audit.IssueKind]string{
	audit.IssueNondeterministic: "E010",
	audit.IssueDuplicate:        "E020",
	audit.IssueDangling:         "E021",
}

// auditSource reads and audits a file, URL, or stdin ("-").
func auditSource(ctx context.Context, stdin io.Reader, source string) (*audit.Report, error) {
	r, err := openSource(ctx, stdin, source)
	if err != nil {
		return nil, errors.New("E151").WithFile(source).Wrap(err)
	}
	defer r.Close()

	report, err := audit.HTML(r)
	if err != nil {
		return nil, errors.New("E151").WithFile(source).Wrap(err)
	}
	return report, nil
}

func openSource(ctx context.Context, stdin io.Reader, source string) (io.ReadCloser, error) {
	switch {
	case source == "-":
		return io.NopCloser(stdin), nil
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return fetch(ctx, source)
	default:
		return os.Open(source)
	}
}

func fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}, nil
}

// cancelReadCloser releases the request context when the body is closed.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
