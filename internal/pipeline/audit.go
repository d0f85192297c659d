package pipeline

import (
	"github.com/ppiankov/cartofolio/internal/model"
	"github.com/ppiankov/cartofolio/internal/view"
)

// FindingKind classifies an audit finding
type FindingKind string

const (
	FindingUnknownStatus FindingKind = "unknown-status"
	FindingNoCoordinates FindingKind = "no-coordinates"
	FindingDuplicateID   FindingKind = "duplicate-id"
	FindingSkipped       FindingKind = "skipped-record"
)

// Finding is one data-quality issue in a snapshot
type Finding struct {
	Kind      FindingKind `json:"kind"`
	MissionID string      `json:"mission_id,omitempty"`
	Title     string      `json:"title,omitempty"`
	Detail    string      `json:"detail,omitempty"`
}

// AuditReport summarizes the data quality of one snapshot
type AuditReport struct {
	Language  model.Language `json:"language"`
	SourceURL string         `json:"source_url"`
	Missions  int            `json:"missions"`
	Placeable int            `json:"placeable"`
	Findings  []Finding      `json:"findings"`
}

// Audit lists missions that would render with the default status styling,
// missions that cannot be placed on the map, repeated IDs and entries
// dropped while decoding.
func Audit(s *model.Snapshot, statuses view.StatusResolver) AuditReport {
	report := AuditReport{
		Language:  s.Language,
		SourceURL: s.SourceURL,
		Missions:  len(s.Missions),
		Findings:  []Finding{},
	}

	for _, skipped := range s.Skipped {
		report.Findings = append(report.Findings, Finding{
			Kind:   FindingSkipped,
			Detail: skipped.Reason,
		})
	}

	seen := make(map[string]bool, len(s.Missions))
	for i := range s.Missions {
		m := &s.Missions[i]

		if seen[m.ID] {
			report.Findings = append(report.Findings, Finding{
				Kind:      FindingDuplicateID,
				MissionID: m.ID,
				Title:     m.DisplayName(),
			})
		}
		seen[m.ID] = true

		if statuses.CanonicalKey(m.Status, s.Language) == model.StatusDefault {
			report.Findings = append(report.Findings, Finding{
				Kind:      FindingUnknownStatus,
				MissionID: m.ID,
				Title:     m.DisplayName(),
				Detail:    m.Status,
			})
		}

		if _, ok := view.ParseLatLon(m.LatLon); ok {
			report.Placeable++
		} else {
			report.Findings = append(report.Findings, Finding{
				Kind:      FindingNoCoordinates,
				MissionID: m.ID,
				Title:     m.DisplayName(),
				Detail:    string(m.LatLon),
			})
		}
	}

	return report
}
