package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/jobtrack/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay describes date relative to today in whole calendar days.
func RelativeDay(date, today time.Time) string {
	days := timeline.DaysBetween(today, date)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DueStyled renders a due date colored by its urgency bucket.
func DueStyled(due, today time.Time, windowDays int) string {
	b := timeline.ClassifyDue(due, today, windowDays)
	return BucketStyle(b).Render(FormatDate(due))
}

// FormatDate renders a calendar date as "Mon 2024-01-08".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return timeline.Day(t).Format("Mon " + timeline.DateLayout)
}

// FormatDays renders a day count, e.g. "5d".
func FormatDays(n int) string {
	return fmt.Sprintf("%dd", n)
}

// SignedDays renders an offset with an explicit sign, e.g. "+7d" or "-3d".
func SignedDays(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%dd", n)
	}
	return fmt.Sprintf("%dd", n)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if id == "" {
		return StyleDim.Render("--")
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
