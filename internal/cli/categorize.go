package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cartofolio/internal/categorize"
)

// categorizeCmd shows how tool names are folded into categories
var categorizeCmd = &cobra.Command{
	Use:   "categorize <name>...",
	Short: "Show the category of one or more tool names",
	Long: `Categorize applies the configured rules to each name. The first rule
with a matching substring wins; names matching no rule are kept as is.

Example:
  cartofolio categorize "Drone Phantom 4" "Station Leica TS16"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCategorize,
}

func init() {
	rootCmd.AddCommand(categorizeCmd)
}

type categorization struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Matched  bool   `json:"matched"`
}

func runCategorize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	categorizer := categorize.NewCategorizer(&cfg.Categories)

	results := make([]categorization, 0, len(args))
	for _, name := range args {
		category, matched := categorizer.Match(name)
		if !matched {
			category = name
		}
		results = append(results, categorization{
			Name:     name,
			Category: category,
			Matched:  matched,
		})
	}

	out := cmd.OutOrStdout()
	if cfg.Output.JSON {
		return printJSON(out, results)
	}

	for _, r := range results {
		if r.Matched {
			fmt.Fprintf(out, "%s → %s\n", r.Name, r.Category)
		} else {
			fmt.Fprintf(out, "%s → %s %s\n", r.Name, r.Category, mutedStyle.Render("(no rule)"))
		}
	}
	return nil
}
