package model

import "time"

// Snapshot is an immutable view of one loaded mission document.
// A language switch replaces the whole snapshot; nothing is patched in place.
type Snapshot struct {
	Language  Language        `json:"language"`
	SourceURL string          `json:"source_url"`
	FetchedAt time.Time       `json:"fetched_at"`
	FromCache bool            `json:"from_cache"`
	Missions  []Mission       `json:"missions"`
	Taxonomy  Taxonomy        `json:"taxonomy"`
	Statuses  []StatusLabel   `json:"statuses"`
	Skipped   []SkippedRecord `json:"skipped,omitempty"`
}

// SkippedRecord is a document entry that could not be decoded as a mission
type SkippedRecord struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Mission returns the mission with the given ID. A unique ID prefix of at
// least 8 characters is accepted as well.
func (s *Snapshot) Mission(id string) (Mission, bool) {
	var (
		match Mission
		found int
	)
	for _, m := range s.Missions {
		if m.ID == id {
			return m, true
		}
		if len(id) >= 8 && len(m.ID) > len(id) && m.ID[:len(id)] == id {
			match = m
			found++
		}
	}
	return match, found == 1
}
