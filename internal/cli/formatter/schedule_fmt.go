package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/jobtrack/internal/app"
	"github.com/alexanderramin/jobtrack/internal/timeline"
)

const urgencyBarWidth = 30

// WeekLabel renders "week N of M", flagging an overrun in red.
func WeekLabel(span timeline.JobSpan) string {
	label := fmt.Sprintf("week %d of %d", span.CurrentWeek, span.TotalWeeks)
	if span.Overrun() {
		return StyleRed.Render(label + " (overrun)")
	}
	return StyleGreen.Render(label)
}

// FormatSpan renders a job's overall range and each phase's derived range.
func FormatSpan(resp *app.SpanResponse) string {
	var b strings.Builder
	b.WriteString(Header(resp.JobTitle + " timeline"))
	b.WriteString("\n")

	s := resp.Span
	fmt.Fprintf(&b, "%s → %s  %s\n",
		FormatDate(s.Start), FormatDate(s.End), Dim(FormatDays(timeline.DaysBetween(s.Start, s.End))))
	if resp.Today.Before(s.Start) {
		fmt.Fprintf(&b, "%s %s\n", Dim("Today"), StyleBlue.Render("starts "+RelativeDay(s.Start, resp.Today)))
	} else {
		fmt.Fprintf(&b, "%s %s\n", Dim("Today"), WeekLabel(s))
	}

	if len(resp.Phases) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	headers := []string{"#", "PHASE", "START", "END", "DAYS"}
	rows := make([][]string, 0, len(resp.Phases))
	for i, p := range resp.Phases {
		title := p.Title
		if p.Empty {
			title += Dim(" (empty)")
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			title,
			FormatDate(p.Start),
			FormatDate(p.End),
			strconv.Itoa(timeline.DaysBetween(p.Start, p.End)),
		})
	}
	b.WriteString(RenderTableAligned(headers, rows, 0, 4))
	return b.String()
}

// FormatUrgency renders the bucket counts with a proportional bar, and the
// item list when the response carries one.
func FormatUrgency(resp *app.UrgencyResponse) string {
	var b strings.Builder
	b.WriteString(Header(resp.JobTitle + " urgency"))
	b.WriteString("\n")

	bar, ok := RenderUrgencyBar(resp.Buckets, urgencyBarWidth)
	if !ok {
		b.WriteString(Dim("Nothing to display: no incomplete tasks or materials."))
		b.WriteString("\n")
		return b.String()
	}

	overdue, next, later, _ := resp.Buckets.Fractions()
	b.WriteString(bar + "\n")
	fmt.Fprintf(&b, "%s %d (%s)   %s %d (%s)   %s %d (%s)\n",
		BucketLabel(timeline.BucketOverdue, resp.WindowDays), resp.Buckets.Overdue, Percent(overdue),
		BucketLabel(timeline.BucketNextSevenDays, resp.WindowDays), resp.Buckets.NextSevenDays, Percent(next),
		BucketLabel(timeline.BucketSevenDaysPlus, resp.WindowDays), resp.Buckets.SevenDaysPlus, Percent(later))

	if len(resp.Items) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	headers := []string{"KIND", "ID", "TITLE", "DUE", "WHEN"}
	rows := make([][]string, 0, len(resp.Items))
	for _, it := range resp.Items {
		rows = append(rows, []string{
			string(it.Kind),
			TruncID(it.ID),
			it.Title,
			BucketStyle(it.Bucket).Render(FormatDate(it.Due)),
			RelativeDay(it.Due, resp.Today),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatCascade renders the result of a shift or extension as a diff table.
func FormatCascade(resp *app.CascadeResponse, verb string) string {
	var b strings.Builder

	if len(resp.Updates) == 0 {
		fmt.Fprintf(&b, "%s %s\n", Bold(resp.JobTitle), Dim("already matches; nothing to "+verb+"."))
		return b.String()
	}

	title := fmt.Sprintf("%s %s (%s)", verb, resp.JobTitle, SignedDays(resp.OffsetDays))
	b.WriteString(Header(title))
	b.WriteString("\n")

	headers := []string{"KIND", "ID", "TITLE", "OLD", "NEW", "DAYS"}
	rows := make([][]string, 0, len(resp.Updates))
	for _, u := range resp.Updates {
		days := ""
		if u.Kind == timeline.UpdateTask {
			days = strconv.Itoa(u.NewDuration)
			if u.OldDuration != u.NewDuration {
				days = fmt.Sprintf("%d → %d", u.OldDuration, u.NewDuration)
			}
		}
		title := u.Title
		if u.Kind == timeline.UpdateJob {
			title = resp.JobTitle
		}
		rows = append(rows, []string{
			string(u.Kind),
			TruncID(u.ID),
			title,
			Dim(FormatDate(u.OldDate)),
			StyleYellow.Render(FormatDate(u.NewDate)),
			days,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	fmt.Fprintf(&b, "\n%s %s → %s\n", Dim("Span"),
		FormatDate(resp.SpanAfter.Start), FormatDate(resp.SpanAfter.End))
	if n := len(resp.ClampedTaskIDs); n > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d task(s) clamped to zero days", n)) + "\n")
	}
	if resp.Applied {
		b.WriteString(StyleGreen.Render(fmt.Sprintf("Applied %d update(s).", len(resp.Updates))) + "\n")
	} else {
		b.WriteString(Dim("Preview only; nothing was written.") + "\n")
	}
	return b.String()
}
