package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cartofolio/internal/filter"
	"github.com/ppiankov/cartofolio/internal/model"
	"github.com/ppiankov/cartofolio/internal/status"
	"github.com/ppiankov/cartofolio/internal/view"
)

// selectionFlags are the filter badges selectable from the command line
type selectionFlags struct {
	statuses []string
	skills   []string
	hardware []string
	software []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.statuses, "status", nil, "status label or key (repeatable)")
	cmd.Flags().StringArrayVar(&f.skills, "skill", nil, "required skill (repeatable)")
	cmd.Flags().StringArrayVar(&f.hardware, "hardware", nil, "required hardware category (repeatable)")
	cmd.Flags().StringArrayVar(&f.software, "software", nil, "required software (repeatable)")
}

// selection builds the selection, accepting canonical keys such as "intern"
// in place of the language's raw status label.
func (f *selectionFlags) selection(registry *status.Registry, lang model.Language) model.Selection {
	byKey := make(map[model.StatusKey]string)
	for _, label := range registry.LabelsFor(lang) {
		byKey[label.Key] = label.Raw
	}

	statuses := make([]string, 0, len(f.statuses))
	for _, s := range f.statuses {
		if raw, ok := byKey[model.StatusKey(s)]; ok {
			s = raw
		}
		statuses = append(statuses, s)
	}

	return model.NewSelection(statuses, f.skills, f.hardware, f.software)
}

var filterFlags selectionFlags

// filterCmd lists the missions matching a selection
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List the missions matching the selected statuses and tags",
	Long: `Filter keeps the missions carrying every selected value: a mission
must have one of the selected statuses, every selected skill, every
selected hardware category and every selected software.

Example:
  cartofolio filter --skill SIG --hardware Drone
  cartofolio filter --status intern --software QGIS --lang en`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
	filterFlags.register(filterCmd)
}

type missionRow struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Status string          `json:"status"`
	Key    model.StatusKey `json:"status_key"`
	Dates  string          `json:"dates,omitempty"`
	Place  string          `json:"place,omitempty"`
}

func runFilter(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	snapshot, err := s.snapshot(cmd.Context())
	if err != nil {
		return err
	}

	registry := s.loader.Registry()
	sel := filterFlags.selection(registry, snapshot.Language)
	matches := filter.NewEngine(s.loader.Categorizer()).Apply(snapshot.Missions, sel)

	rows := make([]missionRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, missionRow{
			ID:     m.ID,
			Title:  m.DisplayName(),
			Status: m.Status,
			Key:    registry.CanonicalKey(m.Status, snapshot.Language),
			Dates:  m.Dates,
			Place:  m.Place,
		})
	}

	out := cmd.OutOrStdout()
	if s.cfg.Output.JSON {
		return printJSON(out, rows)
	}

	fmt.Fprintln(out, describeSnapshot(snapshot))
	heading(out, "%d of %d missions", len(rows), len(snapshot.Missions))
	for _, r := range rows {
		fmt.Fprintf(out, "  %s %s %s  %s\n", shortID(r.ID), swatch(registry.ColorOf(r.Key)), r.Title, mutedStyle.Render(r.Place))
	}
	return nil
}

var markerFlags selectionFlags

// markersCmd prints the map markers of a selection
var markersCmd = &cobra.Command{
	Use:   "markers",
	Short: "Show the map markers and bounds of the selected missions",
	Long: `Markers projects the filtered missions onto the map. Missions without
valid coordinates are left out. The bounds enclose every marker.

Example:
  cartofolio markers --status Stagiaire --json`,
	Args: cobra.NoArgs,
	RunE: runMarkers,
}

func init() {
	rootCmd.AddCommand(markersCmd)
	markerFlags.register(markersCmd)
}

type markerListing struct {
	Markers []view.Marker `json:"markers"`
	Bounds  *view.Bounds  `json:"bounds,omitempty"`
	Skipped int           `json:"skipped"`
}

func runMarkers(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	snapshot, err := s.snapshot(cmd.Context())
	if err != nil {
		return err
	}

	registry := s.loader.Registry()
	sel := markerFlags.selection(registry, snapshot.Language)
	matches := filter.NewEngine(s.loader.Categorizer()).Apply(snapshot.Missions, sel)

	listing := markerListing{Markers: view.Markers(matches, registry, snapshot.Language)}
	listing.Skipped = len(matches) - len(listing.Markers)
	if b, ok := view.BoundsOf(listing.Markers); ok {
		listing.Bounds = &b
	}

	out := cmd.OutOrStdout()
	if s.cfg.Output.JSON {
		return printJSON(out, listing)
	}

	fmt.Fprintln(out, describeSnapshot(snapshot))
	heading(out, "%d markers", len(listing.Markers))
	for _, m := range listing.Markers {
		fmt.Fprintf(out, "  %s %s %9.5f %10.5f  %s\n", shortID(m.ID), swatch(m.Color), m.Coordinates.Lat, m.Coordinates.Lon, m.Title)
	}
	if listing.Skipped > 0 {
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("  %d missions without coordinates", listing.Skipped)))
	}
	if listing.Bounds != nil {
		b := listing.Bounds
		fmt.Fprintf(out, "\nBounds: [%.5f, %.5f] – [%.5f, %.5f]\n",
			b.SouthWest.Lat, b.SouthWest.Lon, b.NorthEast.Lat, b.NorthEast.Lon)
	}
	return nil
}
