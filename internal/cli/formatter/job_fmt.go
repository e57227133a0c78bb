package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/timeline"
)

// FormatJobList renders jobs as a table ordered as given.
func FormatJobList(jobs []*domain.Job) string {
	headers := []string{"ID", "TITLE", "START", "LOCATION", "STATUS"}
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		loc := j.Location
		if loc == "" {
			loc = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(j.ID),
			Bold(j.Title),
			FormatDate(j.StartDate),
			loc,
			JobStatusPill(j.Status),
		})
	}
	return RenderTable(headers, rows)
}

// PhaseDetail is one phase of a job with its children, as shown by
// FormatJobShow.
type PhaseDetail struct {
	Phase     *domain.Phase
	Span      timeline.Span
	Tasks     []*domain.Task
	Materials []*domain.Material
	NoteCount int
}

// JobShowData gathers everything FormatJobShow renders.
type JobShowData struct {
	Job    *domain.Job
	Phases []PhaseDetail
}

// FormatJobShow renders a job header followed by its phase tree.
func FormatJobShow(data JobShowData) string {
	j := data.Job
	var b strings.Builder

	b.WriteString(Header(j.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s %s   %s\n",
		Dim("ID"), j.ID,
		Dim("Start"), FormatDate(j.StartDate),
		JobStatusPill(j.Status))
	if j.Location != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Location"), j.Location)
	}
	if j.Description != "" {
		fmt.Fprintf(&b, "%s\n", StyleFg.Render(j.Description))
	}
	b.WriteString("\n")

	if len(data.Phases) == 0 {
		b.WriteString(Dim("No phases yet. Add one with `jobtrack phase add`."))
		b.WriteString("\n")
		return b.String()
	}

	var items []TreeItem
	for i, pd := range data.Phases {
		detail := fmt.Sprintf("%s → %s", FormatDate(pd.Span.Start), FormatDate(pd.Span.End))
		if pd.NoteCount > 0 {
			detail += fmt.Sprintf(" · %d notes", pd.NoteCount)
		}
		items = append(items, TreeItem{
			Title:  fmt.Sprintf("%d. %s", i+1, pd.Phase.Title),
			Detail: detail,
		})

		total := len(pd.Tasks) + len(pd.Materials)
		n := 0
		for _, t := range pd.Tasks {
			n++
			items = append(items, TreeItem{
				Title:    fmt.Sprintf("%s %s", TruncID(t.ID), t.Title),
				Level:    1,
				IsLast:   n == total,
				Complete: t.IsComplete(),
				Detail:   fmt.Sprintf("task %s +%s", FormatDate(t.StartDate), FormatDays(t.Duration)),
			})
		}
		for _, m := range pd.Materials {
			n++
			items = append(items, TreeItem{
				Title:    fmt.Sprintf("%s %s", TruncID(m.ID), m.Title),
				Level:    1,
				IsLast:   n == total,
				Complete: m.IsComplete(),
				Detail:   "due " + FormatDate(m.DueDate),
			})
		}
	}
	b.WriteString(RenderTree(items))
	return b.String()
}
