package formatter

import (
	"testing"

	"github.com/alexanderramin/jobtrack/internal/app"
	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/timeline"
	"github.com/stretchr/testify/assert"
)

func TestFormatSpan_WeekOfTotal(t *testing.T) {
	resp := &app.SpanResponse{
		JobTitle: "Garage",
		Today:    day(2024, 1, 4),
		Span:     timeline.JobSpan{Start: day(2024, 1, 1), End: day(2024, 1, 6), TotalWeeks: 2, CurrentWeek: 2},
		Phases: []app.PhaseSpanView{
			{Title: "Framing", Start: day(2024, 1, 1), End: day(2024, 1, 6)},
			{Title: "Roofing", Start: day(2024, 1, 1), End: day(2024, 1, 1), Empty: true},
		},
	}

	out := stripANSI(FormatSpan(resp))

	assert.Contains(t, out, "GARAGE TIMELINE")
	assert.Contains(t, out, "week 2 of 2")
	assert.NotContains(t, out, "overrun")
	assert.Contains(t, out, "Roofing (empty)")
}

func TestFormatSpan_Overrun(t *testing.T) {
	resp := &app.SpanResponse{
		JobTitle: "Garage",
		Today:    day(2024, 3, 1),
		Span:     timeline.JobSpan{Start: day(2024, 1, 1), End: day(2024, 1, 6), TotalWeeks: 2, CurrentWeek: 10},
	}
	out := stripANSI(FormatSpan(resp))
	assert.Contains(t, out, "week 10 of 2 (overrun)")
}

func TestFormatSpan_NotStarted(t *testing.T) {
	resp := &app.SpanResponse{
		JobTitle: "Garage",
		Today:    day(2024, 1, 1),
		Span:     timeline.JobSpan{Start: day(2024, 1, 4), End: day(2024, 1, 6), TotalWeeks: 1, CurrentWeek: 1},
	}
	out := stripANSI(FormatSpan(resp))
	assert.Contains(t, out, "starts In 3d")
}

func TestFormatUrgency_NothingToDisplay(t *testing.T) {
	out := stripANSI(FormatUrgency(&app.UrgencyResponse{JobTitle: "Garage", WindowDays: 7}))
	assert.Contains(t, out, "Nothing to display")
	assert.NotContains(t, out, "[")
}

func TestFormatUrgency_CountsAndItems(t *testing.T) {
	resp := &app.UrgencyResponse{
		JobTitle:   "Garage",
		Today:      day(2024, 1, 4),
		WindowDays: 7,
		Buckets:    timeline.Buckets{Overdue: 1, NextSevenDays: 1, SevenDaysPlus: 2},
		Items: []timeline.UrgentItem{
			{Kind: domain.KindMaterial, ID: "mat-00001", Title: "Studs", Due: day(2024, 1, 3), Bucket: timeline.BucketOverdue},
		},
	}

	out := stripANSI(FormatUrgency(resp))

	assert.Contains(t, out, "OVERDUE 1 (25%)")
	assert.Contains(t, out, "NEXT 7D 1 (25%)")
	assert.Contains(t, out, "7D+ 2 (50%)")
	assert.Contains(t, out, "Studs")
	assert.Contains(t, out, "Yesterday")
}

func TestFormatCascade_Applied(t *testing.T) {
	resp := &app.CascadeResponse{
		JobID:      "job-1",
		JobTitle:   "Garage",
		OffsetDays: 7,
		Applied:    true,
		Updates: []timeline.DateUpdate{
			{Kind: timeline.UpdateJob, ID: "job-1", OldDate: day(2024, 1, 1), NewDate: day(2024, 1, 8)},
			{Kind: timeline.UpdateTask, ID: "task-1", Title: "Walls", OldDate: day(2024, 1, 1), NewDate: day(2024, 1, 8), OldDuration: 5, NewDuration: 5},
		},
		SpanAfter: timeline.JobSpan{Start: day(2024, 1, 8), End: day(2024, 1, 13)},
	}

	out := stripANSI(FormatCascade(resp, "shift"))

	assert.Contains(t, out, "SHIFT GARAGE (+7D)")
	assert.Contains(t, out, "Walls")
	assert.Contains(t, out, "Mon 2024-01-08")
	assert.Contains(t, out, "Applied 2 update(s).")
}

func TestFormatCascade_PreviewWithClamps(t *testing.T) {
	resp := &app.CascadeResponse{
		JobTitle:       "Garage",
		OffsetDays:     -10,
		Updates:        []timeline.DateUpdate{{Kind: timeline.UpdateTask, ID: "t", Title: "Walls", OldDate: day(2024, 1, 1), NewDate: day(2024, 1, 1), OldDuration: 5, NewDuration: 0}},
		ClampedTaskIDs: []string{"t"},
	}

	out := stripANSI(FormatCascade(resp, "extend"))

	assert.Contains(t, out, "5 → 0")
	assert.Contains(t, out, "1 task(s) clamped")
	assert.Contains(t, out, "Preview only")
}

func TestFormatCascade_NoChanges(t *testing.T) {
	out := stripANSI(FormatCascade(&app.CascadeResponse{JobTitle: "Garage"}, "shift"))
	assert.Contains(t, out, "nothing to shift")
}
