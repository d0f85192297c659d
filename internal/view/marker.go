// Package view projects missions into map markers and detail panels.
package view

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/ppiankov/cartofolio/internal/model"
)

// StatusResolver maps raw status labels to keys and presentation
type StatusResolver interface {
	CanonicalKey(raw string, lang model.Language) model.StatusKey
	ColorOf(key model.StatusKey) string
	CSSClass(key model.StatusKey) string
}

// Coordinates is a WGS84 position in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Marker is a mission placed on the map
type Marker struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Coordinates Coordinates     `json:"coordinates"`
	StatusKey   model.StatusKey `json:"status_key"`
	Color       string          `json:"color"`
}

// ParseLatLon decodes a raw latlon value. It must be an array of exactly
// two finite JSON numbers within latitude and longitude range.
func ParseLatLon(raw json.RawMessage) (Coordinates, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return Coordinates{}, false
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
		return Coordinates{}, false
	}

	lat, ok := parseNumber(pair[0])
	if !ok {
		return Coordinates{}, false
	}
	lon, ok := parseNumber(pair[1])
	if !ok {
		return Coordinates{}, false
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinates{}, false
	}
	return Coordinates{Lat: lat, Lon: lon}, true
}

func parseNumber(raw json.RawMessage) (float64, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ProjectForMarker places a mission on the map. It returns false when the
// mission has no usable coordinates.
func ProjectForMarker(m *model.Mission, statuses StatusResolver, lang model.Language) (Marker, bool) {
	coords, ok := ParseLatLon(m.LatLon)
	if !ok {
		return Marker{}, false
	}

	key := statuses.CanonicalKey(m.Status, lang)
	return Marker{
		ID:          m.ID,
		Title:       m.DisplayName(),
		Coordinates: coords,
		StatusKey:   key,
		Color:       statuses.ColorOf(key),
	}, true
}

// Markers projects every placeable mission, preserving order
func Markers(missions []model.Mission, statuses StatusResolver, lang model.Language) []Marker {
	markers := make([]Marker, 0, len(missions))
	for i := range missions {
		if marker, ok := ProjectForMarker(&missions[i], statuses, lang); ok {
			markers = append(markers, marker)
		}
	}
	return markers
}

// Bounds is the rectangle enclosing a set of markers
type Bounds struct {
	SouthWest Coordinates `json:"south_west"`
	NorthEast Coordinates `json:"north_east"`
}

// BoundsOf returns the smallest rectangle containing every marker.
// It returns false for an empty set, leaving the map view untouched.
func BoundsOf(markers []Marker) (Bounds, bool) {
	if len(markers) == 0 {
		return Bounds{}, false
	}

	first := markers[0].Coordinates
	b := Bounds{SouthWest: first, NorthEast: first}
	for _, m := range markers[1:] {
		c := m.Coordinates
		b.SouthWest.Lat = math.Min(b.SouthWest.Lat, c.Lat)
		b.SouthWest.Lon = math.Min(b.SouthWest.Lon, c.Lon)
		b.NorthEast.Lat = math.Max(b.NorthEast.Lat, c.Lat)
		b.NorthEast.Lon = math.Max(b.NorthEast.Lon, c.Lon)
	}
	return b, true
}
