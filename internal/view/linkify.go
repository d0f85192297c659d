package view

import (
	"regexp"
	"strings"
)

// Link is a labelled hyperlink. Href is empty when the text held no URL.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

var (
	urlPattern      = regexp.MustCompile(`https?://\S+`)
	trailingColonRe = regexp.MustCompile(`\s*:\s*$`)
)

// Linkify turns credit text such as "Source : https://example.org" into a
// link. The first URL becomes the target. Every URL is removed from the
// label, which keeps the remaining words single-spaced and drops a trailing
// colon. A bare URL labels itself.
func Linkify(text string) Link {
	href := urlPattern.FindString(text)
	if href == "" {
		return Link{Label: text}
	}

	label := strings.Join(strings.Fields(urlPattern.ReplaceAllString(text, "")), " ")
	label = strings.TrimSpace(trailingColonRe.ReplaceAllString(label, ""))
	if label == "" {
		label = href
	}
	return Link{Label: label, Href: href}
}
