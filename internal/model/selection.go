package model

import "sort"

// Axis names one of the four filter dimensions
type Axis string

const (
	AxisStatus   Axis = "status"
	AxisSkill    Axis = "skill"
	AxisHardware Axis = "hardware"
	AxisSoftware Axis = "software"
)

// Selection holds the active filter values per axis.
// An empty set means "no constraint" on that axis.
type Selection struct {
	Statuses           map[string]struct{} // Raw status labels
	Skills             map[string]struct{}
	HardwareCategories map[string]struct{}
	Software           map[string]struct{}
}

// NewSelection builds a selection from plain value lists
func NewSelection(statuses, skills, hardware, software []string) Selection {
	return Selection{
		Statuses:           toSet(statuses),
		Skills:             toSet(skills),
		HardwareCategories: toSet(hardware),
		Software:           toSet(software),
	}
}

// IsEmpty reports whether no axis carries a constraint
func (s Selection) IsEmpty() bool {
	return len(s.Statuses) == 0 && len(s.Skills) == 0 &&
		len(s.HardwareCategories) == 0 && len(s.Software) == 0
}

// Toggle flips a value on an axis, like clicking a filter badge.
// Returns whether the value is selected afterwards.
func (s *Selection) Toggle(axis Axis, value string) bool {
	set := s.axis(axis)
	if set == nil {
		return false
	}
	if *set == nil {
		*set = make(map[string]struct{})
	}
	if _, ok := (*set)[value]; ok {
		delete(*set, value)
		return false
	}
	(*set)[value] = struct{}{}
	return true
}

// Reset clears every axis
func (s *Selection) Reset() {
	*s = Selection{}
}

// Values returns the selected values of an axis, sorted
func (s Selection) Values(axis Axis) []string {
	set := s.axis(axis)
	if set == nil {
		return nil
	}
	out := make([]string, 0, len(*set))
	for v := range *set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (s *Selection) axis(axis Axis) *map[string]struct{} {
	switch axis {
	case AxisStatus:
		return &s.Statuses
	case AxisSkill:
		return &s.Skills
	case AxisHardware:
		return &s.HardwareCategories
	case AxisSoftware:
		return &s.Software
	default:
		return nil
	}
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
