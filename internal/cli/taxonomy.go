package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cartofolio/internal/taxonomy"
)

var (
	taxonomySearch string
	taxonomyCounts bool
)

// taxonomyCmd prints the filter vocabularies
var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "List the skills, hardware categories and software of the portfolio",
	Long: `Taxonomy prints the distinct values offered by the filter panel.
Hardware names are folded into their categories.

Example:
  cartofolio taxonomy
  cartofolio taxonomy --search geo
  cartofolio taxonomy --counts --lang en`,
	Args: cobra.NoArgs,
	RunE: runTaxonomy,
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)

	taxonomyCmd.Flags().StringVarP(&taxonomySearch, "search", "s", "", "only show values containing this text")
	taxonomyCmd.Flags().BoolVar(&taxonomyCounts, "counts", false, "show how many missions carry each value")
}

type axisListing struct {
	Name   string           `json:"name"`
	Values []taxonomy.Count `json:"values"`
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	snapshot, err := s.snapshot(cmd.Context())
	if err != nil {
		return err
	}

	counts := taxonomy.CountMissions(snapshot.Missions, s.loader.Categorizer())
	axes := []axisListing{
		{Name: "skills", Values: searchCounts(counts.Skills, snapshot.Taxonomy.Skills, taxonomySearch)},
		{Name: "hardware", Values: searchCounts(counts.HardwareCategories, snapshot.Taxonomy.HardwareCategories, taxonomySearch)},
		{Name: "software", Values: searchCounts(counts.Software, snapshot.Taxonomy.Software, taxonomySearch)},
	}

	out := cmd.OutOrStdout()
	if s.cfg.Output.JSON {
		return printJSON(out, axes)
	}

	fmt.Fprintln(out, describeSnapshot(snapshot))
	for _, axis := range axes {
		printAxis(out, axis)
	}
	return nil
}

// searchCounts keeps the counts of the vocabulary values matching term
func searchCounts(counts []taxonomy.Count, values []string, term string) []taxonomy.Count {
	keep := make(map[string]bool)
	for _, v := range taxonomy.Search(values, term) {
		keep[v] = true
	}

	out := make([]taxonomy.Count, 0, len(keep))
	for _, c := range counts {
		if keep[c.Value] {
			out = append(out, c)
		}
	}
	return out
}

func printAxis(w io.Writer, axis axisListing) {
	fmt.Fprintln(w)
	heading(w, "%s (%d)", axis.Name, len(axis.Values))
	for _, c := range axis.Values {
		if taxonomyCounts {
			fmt.Fprintf(w, "  %-40s %d\n", c.Value, c.Missions)
		} else {
			fmt.Fprintf(w, "  %s\n", c.Value)
		}
	}
}
