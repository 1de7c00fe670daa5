package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/ariaid/internal/errors"
	"github.com/vango-dev/ariaid/pkg/ids"
)

type validateResult struct {
	ID         string          `json:"id"`
	Valid      bool            `json:"valid"`
	Violations []ids.Violation `json:"violations,omitempty"`
}

func (a *app) validateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate [ids...|-]",
		Short: "Check IDs for non-deterministic segments",
		Long: `Check that IDs contain no random, time-derived or UUID segments.

With no arguments, or "-", IDs are read from stdin, one per line.

Examples:
  ariaid validate ds-field-input-2
  ariaid validate ds-modal-1699999999999
  grep -o 'id="[^"]*"' page.html | cut -d'"' -f2 | ariaid validate -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := args
			if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
				var err error
				list, err = readLines(cmd.InOrStdin())
				if err != nil {
					return errors.New("E151").WithFile("stdin").Wrap(err)
				}
			}
			return a.runValidate(cmd.OutOrStdout(), list, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

func (a *app) runValidate(w io.Writer, list []string, asJSON bool) error {
	results := make([]validateResult, 0, len(list))
	failed := 0
	for _, id := range list {
		v := ids.Inspect(id)
		results = append(results, validateResult{ID: id, Valid: len(v) == 0, Violations: v})
		if len(v) > 0 {
			failed++
		}
	}

	if asJSON {
		if err := writeJSON(w, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				success(w, "%s", r.ID)
				continue
			}
			kinds := make([]string, len(r.Violations))
			for i, v := range r.Violations {
				kinds[i] = string(v.Kind)
				if v.Match != "" {
					kinds[i] += fmt.Sprintf(" %q", v.Match)
				}
			}
			failure(w, "%s: %s", r.ID, strings.Join(kinds, ", "))
		}
	}

	if failed > 0 {
		return errors.New("E010").
			WithDetail(fmt.Sprintf("%d of %d IDs are not deterministic", failed, len(list))).
			WithSuggestion("Generate IDs with an ids.Allocator instead of random or time-based values")
	}
	a.logger.Debug("ids validated", "count", len(list))
	return nil
}

// readLines returns the non-blank, trimmed lines of r.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}
