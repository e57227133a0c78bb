package app

import (
	"time"

	"github.com/alexanderramin/jobtrack/internal/timeline"
)

type SpanRequest struct {
	JobID string
	Now   *time.Time
}

// PhaseSpanView is one phase's derived range. Empty marks the anchor fallback.
type PhaseSpanView struct {
	PhaseID string
	Title   string
	Start   time.Time
	End     time.Time
	Empty   bool
}

type SpanResponse struct {
	JobID    string
	JobTitle string
	Today    time.Time
	Span     timeline.JobSpan
	Phases   []PhaseSpanView
}

type ShiftRequest struct {
	JobID    string
	NewStart time.Time
	DryRun   bool
	Now      *time.Time
}

type ExtendRequest struct {
	JobID  string
	Days   int
	DryRun bool
	Now    *time.Time
}

// CascadeResponse describes a shift or extension. When Applied is false the
// updates were computed but not written.
type CascadeResponse struct {
	JobID          string
	JobTitle       string
	OffsetDays     int
	Applied        bool
	Updates        []timeline.DateUpdate
	ClampedTaskIDs []string
	SpanBefore     timeline.JobSpan
	SpanAfter      timeline.JobSpan
}

type UrgencyRequest struct {
	JobID string
	Now   *time.Time
	// WindowDays overrides the configured near-term window when > 0.
	WindowDays   int
	IncludeItems bool
}

type UrgencyResponse struct {
	JobID      string
	JobTitle   string
	Today      time.Time
	WindowDays int
	Buckets    timeline.Buckets
	Items      []timeline.UrgentItem
}

type ScheduleErrorCode string

const (
	ScheduleErrJobClosed      ScheduleErrorCode = "JOB_CLOSED"
	ScheduleErrInvalidRequest ScheduleErrorCode = "INVALID_REQUEST"
)

type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
}

func (e *ScheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}
