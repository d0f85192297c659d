package taxonomy

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/cartofolio/internal/categorize"
	"github.com/ppiankov/cartofolio/internal/model"
)

func sampleMissions() []model.Mission {
	return []model.Mission{
		{
			Status:   "Stagiaire",
			Skills:   []string{"SIG", "Topographie"},
			Hardware: []string{"Drone Phantom 4", "Station Leica TS"},
			Software: []string{"QGIS", "Covadis"},
		},
		{
			Status:   "Bénévole",
			Skills:   []string{"SIG", "Photogrammétrie"},
			Hardware: []string{"Drone Mavic 3", "Mire INVAR"},
			Software: []string{"Metashape"},
		},
		{
			Status: "Etudiant",
		},
	}
}

func TestBuild_HardwareCategories(t *testing.T) {
	missions := []model.Mission{
		{Hardware: []string{"Drone Phantom 4", "Station Leica TS"}},
	}

	got := Build(missions, categorize.NewCategorizer(nil))

	want := []string{"Drone", "Station Totale"}
	if diff := cmp.Diff(want, got.HardwareCategories); diff != "" {
		t.Errorf("hardware categories mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_DeduplicatedAndSorted(t *testing.T) {
	got := Build(sampleMissions(), categorize.NewCategorizer(nil))

	want := model.Taxonomy{
		Skills:             []string{"Photogrammétrie", "SIG", "Topographie"},
		HardwareCategories: []string{"Drone", "Mire INVAR", "Station Totale"},
		Software:           []string{"Covadis", "Metashape", "QGIS"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("taxonomy mismatch (-want +got):\n%s", diff)
	}

	for name, values := range map[string][]string{
		"skills":   got.Skills,
		"hardware": got.HardwareCategories,
		"software": got.Software,
	} {
		if !sort.StringsAreSorted(values) {
			t.Errorf("%s not sorted: %v", name, values)
		}
		seen := make(map[string]bool)
		for _, v := range values {
			if seen[v] {
				t.Errorf("%s contains duplicate %q", name, v)
			}
			seen[v] = true
		}
	}
}

func TestBuild_OrdinalSort(t *testing.T) {
	missions := []model.Mission{
		{Skills: []string{"topographie", "Topographie", "Éclairage", "Zonage"}},
	}

	got := Build(missions, categorize.NewCategorizer(nil))

	// byte order: uppercase ASCII < lowercase ASCII < multi-byte
	want := []string{"Topographie", "Zonage", "topographie", "Éclairage"}
	if diff := cmp.Diff(want, got.Skills); diff != "" {
		t.Errorf("ordinal sort mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_SoftwareNotCategorized(t *testing.T) {
	missions := []model.Mission{
		{Software: []string{"QGIS 3.28", "Agisoft Metashape 2.0"}},
	}

	got := Build(missions, categorize.NewCategorizer(nil))

	want := []string{"Agisoft Metashape 2.0", "QGIS 3.28"}
	if diff := cmp.Diff(want, got.Software); diff != "" {
		t.Errorf("software should be verbatim (-want +got):\n%s", diff)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	got := Build(nil, categorize.NewCategorizer(nil))

	if got.Skills == nil || got.HardwareCategories == nil || got.Software == nil {
		t.Error("expected non-nil empty slices")
	}
	if len(got.Skills)+len(got.HardwareCategories)+len(got.Software) != 0 {
		t.Errorf("expected empty taxonomy, got %+v", got)
	}
}

func TestBuild_IgnoresEmptyStrings(t *testing.T) {
	missions := []model.Mission{
		{Skills: []string{""}, Hardware: []string{""}, Software: []string{""}},
	}

	got := Build(missions, categorize.NewCategorizer(nil))
	if len(got.Skills)+len(got.HardwareCategories)+len(got.Software) != 0 {
		t.Errorf("expected empty strings to be ignored, got %+v", got)
	}
}

func TestBuild_FreshValuePerCall(t *testing.T) {
	c := categorize.NewCategorizer(nil)

	first := Build([]model.Mission{{Skills: []string{"SIG"}}}, c)
	second := Build([]model.Mission{{Skills: []string{"Topographie"}}}, c)

	if diff := cmp.Diff([]string{"SIG"}, first.Skills); diff != "" {
		t.Errorf("first build changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Topographie"}, second.Skills); diff != "" {
		t.Errorf("second build leaked state from the first (-want +got):\n%s", diff)
	}
}

func largeCollection(n int) []model.Mission {
	missions := make([]model.Mission, n)
	for i := range missions {
		missions[i] = model.Mission{
			Skills:   []string{fmt.Sprintf("skill-%03d", i%37), "SIG"},
			Hardware: []string{fmt.Sprintf("Drone %d", i), fmt.Sprintf("Outil %d", i%11)},
			Software: []string{fmt.Sprintf("soft-%d", i%23)},
		}
	}
	return missions
}

func TestBuildParallel_MatchesBuild(t *testing.T) {
	c := categorize.NewCategorizer(nil)

	for _, n := range []int{0, 10, 64, 65, 500, 1001} {
		for _, workers := range []int{0, 1, 2, 4, 9} {
			t.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(t *testing.T) {
				missions := largeCollection(n)

				got, err := BuildParallel(context.Background(), missions, c, workers)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if diff := cmp.Diff(Build(missions, c), got); diff != "" {
					t.Errorf("parallel build differs (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestBuildParallel_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildParallel(ctx, largeCollection(1000), categorize.NewCategorizer(nil), 4)
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestSearch(t *testing.T) {
	values := []string{"Drone", "Station Totale", "Scanner 3D", "Récepteur GNSS"}

	tests := []struct {
		term     string
		expected []string
	}{
		{"", values},
		{"  ", values},
		{"sta", []string{"Station Totale"}},
		{"S", []string{"Station Totale", "Scanner 3D", "Récepteur GNSS"}},
		{"RÉCEP", []string{"Récepteur GNSS"}},
		{"lidar", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, Search(values, tt.term)); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.term, diff)
			}
		})
	}
}

func TestCountMissions(t *testing.T) {
	missions := sampleMissions()
	missions = append(missions, model.Mission{
		Skills:   []string{"SIG", "SIG"},
		Hardware: []string{"Drone A", "Drone B"},
	})

	got := CountMissions(missions, categorize.NewCategorizer(nil))

	wantSkills := []Count{
		{Value: "Photogrammétrie", Missions: 1},
		{Value: "SIG", Missions: 3},
		{Value: "Topographie", Missions: 1},
	}
	if diff := cmp.Diff(wantSkills, got.Skills); diff != "" {
		t.Errorf("skill counts mismatch (-want +got):\n%s", diff)
	}

	wantHardware := []Count{
		{Value: "Drone", Missions: 3},
		{Value: "Mire INVAR", Missions: 1},
		{Value: "Station Totale", Missions: 1},
	}
	if diff := cmp.Diff(wantHardware, got.HardwareCategories); diff != "" {
		t.Errorf("hardware counts mismatch (-want +got):\n%s", diff)
	}
}
