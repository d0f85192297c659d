package categorize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/cartofolio/internal/model"
)

func TestCategorizer_DefaultRules(t *testing.T) {
	c := NewCategorizer(nil)

	tests := []struct {
		name     string
		expected string
	}{
		{"Station totale Leica TS16", "Station Totale"},
		{"Station Leica TS", "Station Totale"},
		{"Scanner Leica RTC360", "Scanner 3D"},
		{"Récepteur GNSS Trimble R10", "Récepteur GNSS"},
		{"Septentrio Altus NR3", "Récepteur GNSS"},
		{"Drone Phantom 4", "Drone"},
		{"DJI Mavic drone", "Drone"},
		{"GoPro Hero 9", "Appareil photo / Caméra"},
		{"Appareil photo Nikon", "Appareil photo / Caméra"},
		{"Géoradar IDS", "Géoradar"},
		{"Vivax vLoc3", "Détecteur de réseaux"},
		{"QGIS 3.28", "QGIS"},
		{"AutoCAD Map 3D", "AutoCAD"},
		{"Covadis 2024", "Covadis"},
		{"Agisoft Metashape Pro", "Agisoft Metashape"},
		{"Cyclone REGISTER 360", "Leica Cyclone"},
		{"Trimble RealWorks", "Trimble Realworks"},
		{"CloudCompare", "CloudCompare"},
		{"Géofoncier Expert", "Géofoncier"},
		{"Niveau numérique Leica LS15", "Niveau numérique Leica LS15"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Categorize(tt.name); got != tt.expected {
				t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestCategorizer_UnmatchedKeepsOriginalCase(t *testing.T) {
	c := NewCategorizer(nil)

	if got := c.Categorize("Mire INVAR"); got != "Mire INVAR" {
		t.Errorf("expected verbatim passthrough, got %q", got)
	}
}

func TestCategorizer_CaseInsensitive(t *testing.T) {
	c := NewCategorizer(nil)

	if got := c.Categorize("STATION TOTALE"); got != "Station Totale" {
		t.Errorf("expected uppercase input to match, got %q", got)
	}
	if got := c.Categorize("CAMÉRA thermique"); got != "Appareil photo / Caméra" {
		t.Errorf("expected accented uppercase input to match, got %q", got)
	}
}

func TestCategorizer_ReferenceOrder(t *testing.T) {
	c := NewCategorizer(nil)

	// drone is declared before camera in the reference rules
	if got := c.Categorize("Caméra GoPro Drone"); got != "Drone" {
		t.Errorf("expected reference order to resolve to Drone, got %q", got)
	}
}

func TestCategorizer_FirstMatchWins(t *testing.T) {
	c := NewCategorizer(&model.CategoryConfig{
		Rules: []model.CategoryRule{
			{Substrings: []string{"caméra", "gopro"}, Category: "Appareil photo / Caméra"},
			{Substrings: []string{"drone"}, Category: "Drone"},
		},
	})

	if got := c.Categorize("Caméra GoPro Drone"); got != "Appareil photo / Caméra" {
		t.Errorf("expected camera-before-drone rules to resolve to camera, got %q", got)
	}
}

func TestCategorizer_Deterministic(t *testing.T) {
	c := NewCategorizer(nil)
	names := []string{"Drone Phantom 4", "Mire INVAR", "", "qgis", "Station"}

	for _, name := range names {
		first := c.Categorize(name)
		for i := 0; i < 10; i++ {
			if got := c.Categorize(name); got != first {
				t.Fatalf("Categorize(%q) not stable: %q then %q", name, first, got)
			}
		}
	}
}

func TestCategorizer_SkipsEmptyRules(t *testing.T) {
	c := NewCategorizer(&model.CategoryConfig{
		Rules: []model.CategoryRule{
			{Substrings: []string{""}, Category: "Everything"},
			{Substrings: []string{"drone"}, Category: ""},
			{Substrings: []string{"DRONE"}, Category: "Drone"},
		},
	})

	if got := c.Categorize("Mavic drone"); got != "Drone" {
		t.Errorf("expected empty substrings and categories to be ignored, got %q", got)
	}
	if len(c.Rules()) != 1 {
		t.Errorf("expected 1 active rule, got %d", len(c.Rules()))
	}
}

func TestCategorizer_CategorizeAll(t *testing.T) {
	c := NewCategorizer(nil)

	got := c.CategorizeAll([]string{"Drone Mavic", "Station Leica", "Drone Phantom", "Mire"})
	want := []string{"Drone", "Station Totale", "Mire"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CategorizeAll mismatch (-want +got):\n%s", diff)
	}

	set := c.CategorySet([]string{"Drone Mavic", "Drone Phantom"})
	if _, ok := set["Drone"]; !ok || len(set) != 1 {
		t.Errorf("unexpected category set %v", set)
	}
}

func TestCategorizer_Match(t *testing.T) {
	c := NewCategorizer(nil)

	if category, ok := c.Match("QGIS 3.28"); !ok || category != "QGIS" {
		t.Errorf("Match(QGIS 3.28) = %q, %v", category, ok)
	}
	if category, ok := c.Match("Mire INVAR"); ok || category != "" {
		t.Errorf("Match(Mire INVAR) = %q, %v; want no match", category, ok)
	}
}
