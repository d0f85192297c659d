package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cartofolio/internal/view"
)

// showCmd prints the detail panel of a mission
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the details of one mission",
	Long: `Show prints the detail panel of a mission. The ID may be shortened to
any unique prefix of at least 8 characters, as printed by "filter".

Example:
  cartofolio show 3f2a9c1e`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	snapshot, err := s.snapshot(cmd.Context())
	if err != nil {
		return err
	}

	mission, ok := snapshot.Mission(args[0])
	if !ok {
		return fmt.Errorf("no mission with ID %q in the %s document", args[0], snapshot.Language)
	}

	detail := view.Details(&mission, s.loader.Registry(), s.loader.Categorizer(), snapshot.Language)

	out := cmd.OutOrStdout()
	if s.cfg.Output.JSON {
		return printJSON(out, detail)
	}

	printDetail(out, detail)
	return nil
}

func printDetail(w io.Writer, d view.Detail) {
	title := d.Title
	if title == "" {
		title = "(untitled)"
	}
	statusLabel := d.Status
	if statusLabel == "" {
		statusLabel = "N/A"
	}

	heading(w, "%s", title)
	fmt.Fprintf(w, "%s %s %s\n", swatch(d.Color), statusLabel, mutedStyle.Render(d.StatusClass))
	if d.Dates != "" || d.Place != "" {
		fmt.Fprintf(w, "%s  %s\n", d.Dates, d.Place)
	}
	if d.Coordinates != nil {
		fmt.Fprintf(w, "%.5f, %.5f\n", d.Coordinates.Lat, d.Coordinates.Lon)
	}

	if len(d.Description) > 0 {
		fmt.Fprintln(w)
		for _, para := range d.Description {
			fmt.Fprintln(w, para)
		}
	}

	printPills(w, "Domains", d.Domains)
	printPills(w, "Skills", d.Skills)
	printPills(w, "Hardware", d.Hardware)
	printPills(w, "Hardware categories", d.HardwareCategories)
	printPills(w, "Software", d.Software)

	if d.Members != "" {
		fmt.Fprintln(w)
		heading(w, "Members")
		fmt.Fprintln(w, d.Members)
	}

	if len(d.Images) > 0 {
		fmt.Fprintln(w)
		heading(w, "Images")
		for _, img := range d.Images {
			line := img.Path
			if img.Caption != "" {
				line += "  " + img.Caption
			}
			if img.Credit.Href != "" {
				line += "  (" + img.Credit.Label + ": " + img.Credit.Href + ")"
			} else if img.Credit.Label != "" {
				line += "  (" + img.Credit.Label + ")"
			}
			fmt.Fprintln(w, line)
		}
	}

	for _, link := range d.Links {
		fmt.Fprintf(w, "→ %s: %s\n", link.Label, link.Href)
	}
	if d.DocumentURL != "" {
		fmt.Fprintf(w, "\nPDF: %s\n", d.DocumentURL)
	}
	fmt.Fprintln(w, mutedStyle.Render("id "+d.ID))
}

func printPills(w io.Writer, title string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintln(w)
	heading(w, "%s", title)
	fmt.Fprintln(w, strings.Join(values, " · "))
}
