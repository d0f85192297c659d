package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cartofolio/internal/model"
	"github.com/ppiankov/cartofolio/internal/pipeline"
)

// checkCmd loads every configured language and audits the documents
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every language document and report data problems",
	Long: `Check loads all configured language documents concurrently and reports,
for each one, unknown status labels, missions without coordinates,
repeated IDs and entries that could not be decoded.

The command exits with an error when any document fails to load.

Example:
  cartofolio check
  cartofolio check --no-cache --json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkResult struct {
	Language model.Language        `json:"language"`
	Error    string                `json:"error,omitempty"`
	Report   *pipeline.AuditReport `json:"report,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	var langs []model.Language
	for _, lang := range model.SupportedLanguages() {
		if doc := s.cfg.Source.Documents[lang]; doc != "" {
			langs = append(langs, lang)
		}
	}

	loads := s.loader.LoadAll(cmd.Context(), langs)

	results := make([]checkResult, 0, len(loads))
	failures := 0
	for _, r := range loads {
		if r.Error != nil {
			failures++
			results = append(results, checkResult{Language: r.Language, Error: describeLoadError(r.Error).Error()})
			continue
		}
		report := pipeline.Audit(r.Snapshot, s.loader.Registry())
		results = append(results, checkResult{Language: r.Language, Report: &report})
	}

	out := cmd.OutOrStdout()
	if s.cfg.Output.JSON {
		if err := printJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			printCheck(out, r)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d documents failed to load", failures, len(results))
	}
	return nil
}

func printCheck(w io.Writer, r checkResult) {
	if r.Report == nil {
		fmt.Fprintf(w, "✗ %s  %s\n", r.Language, r.Error)
		return
	}

	rep := r.Report
	fmt.Fprintf(w, "✓ %s  %d missions, %d placeable, %d findings\n",
		r.Language, rep.Missions, rep.Placeable, len(rep.Findings))
	for _, f := range rep.Findings {
		line := fmt.Sprintf("    %-15s %s", f.Kind, shortID(f.MissionID))
		if f.Title != "" {
			line += " " + f.Title
		}
		if f.Detail != "" {
			line += " " + mutedStyle.Render(f.Detail)
		}
		fmt.Fprintln(w, line)
	}
}
