package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ppiankov/cartofolio/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func heading(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf(format, args...)))
}

// swatch renders a colored dot; the alpha channel of #rrggbbaa colors is dropped
func swatch(hex string) string {
	if len(hex) == 9 && strings.HasPrefix(hex, "#") {
		hex = hex[:7]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// describeSnapshot is the one-line provenance note printed above results
func describeSnapshot(s *model.Snapshot) string {
	origin := "fetched"
	if s.FromCache {
		origin = "cached"
	}
	age := "just now"
	if !s.FetchedAt.IsZero() && time.Since(s.FetchedAt) > time.Second {
		age = humanize.Time(s.FetchedAt)
	}
	return mutedStyle.Render(fmt.Sprintf("%s missions [%s] from %s, %s %s",
		humanize.Comma(int64(len(s.Missions))), s.Language, s.SourceURL, origin, age))
}
