package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/cartofolio/internal/categorize"
	"github.com/ppiankov/cartofolio/internal/model"
)

func testMissions() []model.Mission {
	return []model.Mission{
		{ID: "m0", Status: "Stagiaire", Skills: []string{"SIG"}, Hardware: []string{"Drone Mavic"}},
		{ID: "m1", Status: "Bénévole", Skills: []string{"SIG"}, Hardware: []string{"Station Leica"}},
		{ID: "m2", Status: "Stagiaire", Skills: []string{"SIG", "Topographie"},
			Hardware: []string{"Drone Phantom 4", "Station Trimble S7"}, Software: []string{"QGIS", "Covadis"}},
		{ID: "m3", Status: "Etudiant", Software: []string{"QGIS"}},
	}
}

func ids(missions []model.Mission) []string {
	out := make([]string, 0, len(missions))
	for _, m := range missions {
		out = append(out, m.ID)
	}
	return out
}

func TestApply_EndToEndScenario(t *testing.T) {
	missions := []model.Mission{
		{ID: "first", Status: "Stagiaire", Skills: []string{"SIG"}, Hardware: []string{"Drone Mavic"}},
		{ID: "second", Status: "Bénévole", Skills: []string{"SIG"}, Hardware: []string{"Station Leica"}},
	}
	sel := model.NewSelection(nil, []string{"SIG"}, []string{"Drone"}, nil)

	got := NewEngine(categorize.NewCategorizer(nil)).Apply(missions, sel)

	if diff := cmp.Diff([]string{"first"}, ids(got)); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_EmptySelectionIsIdentity(t *testing.T) {
	missions := testMissions()

	got := NewEngine(categorize.NewCategorizer(nil)).Apply(missions, model.Selection{})

	if diff := cmp.Diff(missions, got); diff != "" {
		t.Errorf("empty selection changed the input (-want +got):\n%s", diff)
	}
}

func TestApply(t *testing.T) {
	engine := NewEngine(categorize.NewCategorizer(nil))

	tests := []struct {
		name     string
		sel      model.Selection
		expected []string
	}{
		{
			name:     "status only",
			sel:      model.NewSelection([]string{"Stagiaire"}, nil, nil, nil),
			expected: []string{"m0", "m2"},
		},
		{
			name:     "several statuses",
			sel:      model.NewSelection([]string{"Stagiaire", "Etudiant"}, nil, nil, nil),
			expected: []string{"m0", "m2", "m3"},
		},
		{
			name:     "skills are ANDed",
			sel:      model.NewSelection(nil, []string{"SIG", "Topographie"}, nil, nil),
			expected: []string{"m2"},
		},
		{
			name:     "hardware matched by category",
			sel:      model.NewSelection(nil, nil, []string{"Station Totale"}, nil),
			expected: []string{"m1", "m2"},
		},
		{
			name:     "hardware categories are ANDed",
			sel:      model.NewSelection(nil, nil, []string{"Station Totale", "Drone"}, nil),
			expected: []string{"m2"},
		},
		{
			name:     "software",
			sel:      model.NewSelection(nil, nil, nil, []string{"QGIS"}),
			expected: []string{"m2", "m3"},
		},
		{
			name:     "axes are ANDed",
			sel:      model.NewSelection([]string{"Etudiant"}, nil, nil, []string{"QGIS"}),
			expected: []string{"m3"},
		},
		{
			name:     "raw hardware name does not match",
			sel:      model.NewSelection(nil, nil, []string{"Drone Mavic"}, nil),
			expected: []string{},
		},
		{
			name:     "unknown status",
			sel:      model.NewSelection([]string{"Intern"}, nil, nil, nil),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Apply(testMissions(), tt.sel)
			if got == nil {
				t.Fatal("Apply returned nil")
			}
			if diff := cmp.Diff(tt.expected, ids(got)); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_Monotonic(t *testing.T) {
	engine := NewEngine(categorize.NewCategorizer(nil))
	missions := testMissions()

	steps := []struct {
		axis  model.Axis
		value string
	}{
		{model.AxisSkill, "SIG"},
		{model.AxisStatus, "Stagiaire"},
		{model.AxisHardware, "Drone"},
		{model.AxisSoftware, "QGIS"},
		{model.AxisSkill, "Topographie"},
		{model.AxisSoftware, "AutoCAD"},
	}

	var sel model.Selection
	prev := len(engine.Apply(missions, sel))
	for _, step := range steps {
		sel.Toggle(step.axis, step.value)
		n := len(engine.Apply(missions, sel))
		if n > prev {
			t.Errorf("adding %s=%q grew the result from %d to %d", step.axis, step.value, prev, n)
		}
		prev = n
	}
	if prev != 0 {
		t.Errorf("expected the final selection to match nothing, got %d", prev)
	}
}

func TestApply_MissingHardwareField(t *testing.T) {
	missions := []model.Mission{
		{ID: "no-hardware", Status: "Stagiaire"},
		{ID: "drone", Status: "Stagiaire", Hardware: []string{"Drone DJI"}},
	}
	sel := model.NewSelection(nil, nil, []string{"Drone"}, nil)

	got := NewEngine(categorize.NewCategorizer(nil)).Apply(missions, sel)

	if diff := cmp.Diff([]string{"drone"}, ids(got)); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	missions := testMissions()
	sel := model.NewSelection([]string{"Stagiaire"}, []string{"SIG"}, nil, nil)

	NewEngine(categorize.NewCategorizer(nil)).Apply(missions, sel)

	if diff := cmp.Diff(testMissions(), missions); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
	if len(sel.Statuses) != 1 || len(sel.Skills) != 1 {
		t.Errorf("selection mutated: %+v", sel)
	}
}

func TestMatches(t *testing.T) {
	engine := NewEngine(categorize.NewCategorizer(nil))
	m := model.Mission{Status: "Bénévole", Hardware: []string{"Scanner Faro Focus"}}

	if !engine.Matches(&m, model.NewSelection(nil, nil, []string{"Scanner 3D"}, nil)) {
		t.Error("expected scanner category to match")
	}
	if engine.Matches(&m, model.NewSelection([]string{"Stagiaire"}, nil, nil, nil)) {
		t.Error("expected status mismatch")
	}
	if !engine.Matches(&m, model.Selection{}) {
		t.Error("expected empty selection to match")
	}
}

type countingCategorizer struct {
	calls int
}

func (c *countingCategorizer) CategorySet(names []string) map[string]struct{} {
	c.calls++
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func TestApply_HardwareAxisUsesCategorySet(t *testing.T) {
	missions := testMissions()

	counter := &countingCategorizer{}
	NewEngine(counter).Apply(missions, model.NewSelection(nil, []string{"SIG"}, nil, nil))
	if counter.calls != 0 {
		t.Errorf("CategorySet called %d times without hardware selection", counter.calls)
	}

	sel := model.NewSelection(nil, nil, []string{"Station Leica"}, nil)
	got := NewEngine(counter).Apply(missions, sel)
	if diff := cmp.Diff([]string{"m1"}, ids(got)); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if counter.calls != len(missions) {
		t.Errorf("CategorySet called %d times, want once per mission (%d)", counter.calls, len(missions))
	}
}
