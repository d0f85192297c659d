package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cartofolio/internal/status"
)

// statusesCmd prints the status vocabulary of a language
var statusesCmd = &cobra.Command{
	Use:   "statuses",
	Short: "Show the status labels, keys and colors of a language",
	Long: `Statuses prints the status vocabulary used by the selected language,
in legend order, with the canonical key and marker color of each label.

Example:
  cartofolio statuses --lang es`,
	Args: cobra.NoArgs,
	RunE: runStatuses,
}

func init() {
	rootCmd.AddCommand(statusesCmd)
}

type statusRow struct {
	Label    string `json:"label"`
	Key      string `json:"key"`
	Color    string `json:"color"`
	CSSClass string `json:"css_class"`
}

func runStatuses(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := status.NewRegistry(&cfg.Vocabulary)
	if err != nil {
		return err
	}

	lang := cfg.Source.DefaultLanguage
	var rows []statusRow
	for _, label := range registry.LabelsFor(lang) {
		rows = append(rows, statusRow{
			Label:    label.Raw,
			Key:      string(label.Key),
			Color:    registry.ColorOf(label.Key),
			CSSClass: registry.CSSClass(label.Key),
		})
	}

	out := cmd.OutOrStdout()
	if cfg.Output.JSON {
		return printJSON(out, rows)
	}

	heading(out, "Statuses (%s)", lang)
	for _, r := range rows {
		fmt.Fprintf(out, "  %s %-28s %-16s %s\n", swatch(r.Color), r.Label, r.Key, r.Color)
	}
	return nil
}
