package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/timeline"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColorMode applies the display.color setting. "auto" keeps lipgloss's
// terminal detection.
func SetColorMode(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// BucketStyle maps an urgency bucket to its color.
func BucketStyle(b timeline.Bucket) lipgloss.Style {
	switch b {
	case timeline.BucketOverdue:
		return StyleRed
	case timeline.BucketNextSevenDays:
		return StyleYellow
	case timeline.BucketSevenDaysPlus:
		return StyleGreen
	default:
		return StyleDim
	}
}

// BucketLabel returns the display label for a bucket, e.g. "● OVERDUE".
func BucketLabel(b timeline.Bucket, windowDays int) string {
	switch b {
	case timeline.BucketOverdue:
		return StyleRed.Render("● OVERDUE")
	case timeline.BucketNextSevenDays:
		return StyleYellow.Render(fmt.Sprintf("● NEXT %dD", windowDays))
	case timeline.BucketSevenDaysPlus:
		return StyleGreen.Render(fmt.Sprintf("● %dD+", windowDays))
	default:
		return StyleDim.Render("● DONE")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// JobStatusPill returns a colored indicator for a job's status.
func JobStatusPill(status domain.JobStatus) string {
	switch status {
	case domain.JobActive:
		return StyleGreen.Render("● Active")
	case domain.JobClosed:
		return StyleDim.Render("✖ Closed")
	default:
		return StyleDim.Render(string(status))
	}
}

// ItemStatusPill returns a colored indicator for a task or material.
func ItemStatusPill(status domain.ItemStatus) string {
	if status == domain.ItemComplete {
		return StyleDim.Render("✔ Complete")
	}
	return StyleBlue.Render("○ Incomplete")
}
