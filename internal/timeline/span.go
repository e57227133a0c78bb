package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/jobtrack/internal/domain"
)

// Span is the inclusive calendar range covered by a phase or a job.
type Span struct {
	Start time.Time
	End   time.Time
}

// PhaseSpan computes a phase's displayed range from its children. Start is
// the earliest task start or material due date; End is the latest task end
// or material due date. The anchor, which callers pass as the job's start
// date, is only a fallback: a phase with no children collapses to it, but it
// is never folded into a non-empty phase, so a phase whose first child comes
// after the job start keeps that later start.
func PhaseSpan(anchor time.Time, tasks []domain.Task, materials []domain.Material) Span {
	if len(tasks) == 0 && len(materials) == 0 {
		a := Day(anchor)
		return Span{Start: a, End: a}
	}

	var span Span
	first := true
	include := func(start, end time.Time) {
		if first {
			span = Span{Start: start, End: end}
			first = false
			return
		}
		span.Start = minDate(span.Start, start)
		span.End = maxDate(span.End, end)
	}

	for i := range tasks {
		start := Day(tasks[i].StartDate)
		include(start, AddDays(start, tasks[i].Duration))
	}
	for i := range materials {
		due := Day(materials[i].DueDate)
		include(due, due)
	}
	return span
}

// JobSpan summarises a job's overall timeline relative to today.
type JobSpan struct {
	Start       time.Time
	End         time.Time
	TotalWeeks  int
	CurrentWeek int
}

// Overrun reports whether today is past the last scheduled week.
func (s JobSpan) Overrun() bool {
	return s.CurrentWeek > s.TotalWeeks
}

// ComputeJobSpan derives the job range from its phase spans. End falls back
// to the job start when there are no phases. CurrentWeek is not clamped to
// TotalWeeks: a job running past its latest item reports the overrun.
func ComputeJobSpan(jobStart time.Time, phases []Span, today time.Time) JobSpan {
	start := Day(jobStart)
	end := start
	for i, p := range phases {
		if i == 0 {
			end = Day(p.End)
			continue
		}
		end = maxDate(end, Day(p.End))
	}

	return JobSpan{
		Start:       start,
		End:         end,
		TotalWeeks:  weeksCeil(DaysBetween(start, end)) + 1,
		CurrentWeek: weeksCeil(DaysBetween(start, today)) + 1,
	}
}

func weeksCeil(days int) int {
	return int(math.Ceil(float64(days) / 7))
}
