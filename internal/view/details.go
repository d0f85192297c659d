package view

import (
	"github.com/ppiankov/cartofolio/internal/model"
)

// Detail is the side-panel projection of a mission
type Detail struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Status      string          `json:"status"`
	StatusKey   model.StatusKey `json:"status_key"`
	StatusClass string          `json:"status_class"`
	Color       string          `json:"color"`
	Dates       string          `json:"dates,omitempty"`
	Place       string          `json:"place,omitempty"`
	Coordinates *Coordinates    `json:"coordinates,omitempty"`
	Description []string        `json:"description,omitempty"`
	Links       []Link          `json:"links,omitempty"`
	Domains     []string        `json:"domains,omitempty"`
	Skills      []string        `json:"skills,omitempty"`
	Hardware    []string        `json:"hardware,omitempty"`
	Software    []string        `json:"software,omitempty"`
	Members     string          `json:"members,omitempty"`
	Images      []ImageDetail   `json:"images,omitempty"`
	DocumentURL string          `json:"document_url,omitempty"`

	// HardwareCategories are the filter categories of Hardware, in first-seen order.
	HardwareCategories []string `json:"hardware_categories,omitempty"`
}

// ImageDetail is a carousel slide with its credit linkified
type ImageDetail struct {
	Path    string `json:"path"`
	Caption string `json:"caption,omitempty"`
	Credit  Link   `json:"credit"`
}

// HardwareCategorizer groups hardware names into filter categories
type HardwareCategorizer interface {
	CategorizeAll(names []string) []string
}

// Details builds the detail panel of a mission. A nil categorizer leaves
// HardwareCategories empty.
func Details(m *model.Mission, statuses StatusResolver, categories HardwareCategorizer, lang model.Language) Detail {
	key := statuses.CanonicalKey(m.Status, lang)

	d := Detail{
		ID:          m.ID,
		Title:       m.DisplayName(),
		Status:      m.Status,
		StatusKey:   key,
		StatusClass: statuses.CSSClass(key),
		Color:       statuses.ColorOf(key),
		Dates:       m.Dates,
		Place:       m.Place,
		Domains:     pills(m.Domains),
		Skills:      pills(m.Skills),
		Hardware:    pills(m.Hardware),
		Software:    pills(m.Software),
		Members:     string(m.Members),
		DocumentURL: m.DocumentURL,
	}

	if categories != nil && len(d.Hardware) > 0 {
		d.HardwareCategories = categories.CategorizeAll(d.Hardware)
	}

	if coords, ok := ParseLatLon(m.LatLon); ok {
		d.Coordinates = &coords
	}

	for _, para := range m.Description {
		text, links := plainText(para)
		if text != "" {
			d.Description = append(d.Description, text)
		}
		d.Links = append(d.Links, links...)
	}

	for _, img := range m.Images {
		if img.Path == "" {
			continue
		}
		d.Images = append(d.Images, ImageDetail{
			Path:    img.Path,
			Caption: img.Caption,
			Credit:  Linkify(img.Source),
		})
	}

	return d
}

func pills(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
