package model

import "encoding/json"

// Mission is one portfolio entry as published in the per-language documents.
// Field names follow the JSON documents; every field is optional. LatLon is
// kept raw so a malformed pair never fails decoding of the whole document.
// Description paragraphs may carry inline markup. Position is the index of
// the entry in its document.
type Mission struct {
	ID          string          `json:"id,omitempty"`
	Position    int             `json:"-"`
	Name        string          `json:"nom,omitempty"`
	Title       string          `json:"titre,omitempty"`
	Status      string          `json:"statut,omitempty"`
	Dates       string          `json:"dates,omitempty"`
	Place       string          `json:"lieu,omitempty"`
	LatLon      json.RawMessage `json:"latlon,omitempty"`
	Skills      StringList      `json:"competences,omitempty"`
	Hardware    StringList      `json:"materiels,omitempty"`
	Software    StringList      `json:"softwares,omitempty"`
	Domains     StringList      `json:"domaines,omitempty"`
	Description StringList      `json:"description_mission,omitempty"`
	Members     Text            `json:"membres,omitempty"`
	Images      []Image         `json:"images_data,omitempty"`
	DocumentURL string          `json:"lien_pdf,omitempty"`
}

// UnmarshalJSON decodes a mission field by field. A field of an unexpected
// type degrades to its text form or to empty; it never rejects the mission.
func (m *Mission) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*m = Mission{
		ID:          textOf(fields["id"]),
		Name:        textOf(fields["nom"]),
		Title:       textOf(fields["titre"]),
		Status:      textOf(fields["statut"]),
		Dates:       textOf(fields["dates"]),
		Place:       textOf(fields["lieu"]),
		LatLon:      fields["latlon"],
		Skills:      listOf(fields["competences"]),
		Hardware:    listOf(fields["materiels"]),
		Software:    listOf(fields["softwares"]),
		Domains:     listOf(fields["domaines"]),
		Description: listOf(fields["description_mission"]),
		Members:     Text(textOf(fields["membres"])),
		Images:      imagesOf(fields["images_data"]),
		DocumentURL: textOf(fields["lien_pdf"]),
	}
	return nil
}

// imagesOf keeps the object entries of an images_data array
func imagesOf(raw json.RawMessage) []Image {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	var out []Image
	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			continue
		}
		out = append(out, Image{
			Path:    textOf(fields["image_path"]),
			Caption: textOf(fields["image_caption"]),
			Source:  textOf(fields["image_source"]),
		})
	}
	return out
}

// Image is a captioned picture attached to a mission
type Image struct {
	Path    string `json:"image_path"`
	Caption string `json:"image_caption,omitempty"`
	Source  string `json:"image_source,omitempty"`
}

// DisplayName returns the name shown in the details panel
func (m Mission) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Title
}

// Taxonomy is the filter vocabulary derived from a mission collection.
// Every list is deduplicated and sorted in ordinal order.
type Taxonomy struct {
	Skills             []string `json:"skills"`
	HardwareCategories []string `json:"hardware_categories"`
	Software           []string `json:"software"`
}
