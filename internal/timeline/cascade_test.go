package timeline

import (
	"testing"

	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleTaskSchedule() Schedule {
	return Schedule{
		JobID:    "job-1",
		JobStart: d(2024, 1, 1),
		Phases: []PhaseSchedule{{
			Phase: domain.Phase{ID: "p1", JobID: "job-1", StartDate: d(2024, 1, 1)},
			Tasks: []domain.Task{task("t1", d(2024, 1, 1), 5)},
		}},
	}
}

func TestShiftStartDate_MovesTasksByOffset(t *testing.T) {
	out := ShiftStartDate(d(2024, 1, 1), d(2024, 1, 8), singleTaskSchedule())

	got := out.Phases[0].Tasks[0]
	assert.Equal(t, d(2024, 1, 8), got.StartDate)
	assert.Equal(t, d(2024, 1, 13), got.EndDate())
	assert.Equal(t, 5, got.Duration, "duration is relative and must not change")
	assert.Equal(t, d(2024, 1, 8), out.Phases[0].Phase.StartDate)
	assert.Equal(t, d(2024, 1, 8), out.JobStart)
}

func TestShiftStartDate_NegativeOffset(t *testing.T) {
	s := singleTaskSchedule()
	s.Phases[0].Materials = []domain.Material{material("m1", d(2024, 1, 20))}

	out := ShiftStartDate(d(2024, 1, 1), d(2023, 12, 29), s)
	assert.Equal(t, d(2023, 12, 29), out.Phases[0].Tasks[0].StartDate)
	assert.Equal(t, d(2024, 1, 17), out.Phases[0].Materials[0].DueDate)
}

func TestShiftStartDate_ZeroOffsetIsNoop(t *testing.T) {
	s := singleTaskSchedule()
	s.Phases[0].Phase.StartDate = d(2020, 1, 1)

	out := ShiftStartDate(d(2024, 1, 1), d(2024, 1, 1), s)
	assert.Equal(t, s, out)
}

func TestShiftStartDate_DoesNotMutateInput(t *testing.T) {
	s := singleTaskSchedule()
	_ = ShiftStartDate(d(2024, 1, 1), d(2024, 2, 1), s)
	assert.Equal(t, d(2024, 1, 1), s.Phases[0].Tasks[0].StartDate)
	assert.Equal(t, d(2024, 1, 1), s.JobStart)
}

func TestShiftStartDate_EmptyPhaseFollowsJobStart(t *testing.T) {
	s := Schedule{
		JobStart: d(2024, 3, 1),
		Phases:   []PhaseSchedule{{Phase: domain.Phase{ID: "p1", StartDate: d(2024, 3, 1)}}},
	}
	out := ShiftStartDate(d(2024, 3, 1), d(2024, 3, 11), s)
	assert.Equal(t, d(2024, 3, 11), out.Phases[0].Phase.StartDate)
}

func TestShiftStartDate_PhaseStartRecomputedNotShifted(t *testing.T) {
	s := singleTaskSchedule()
	// Stored phase start is stale; a blind shift would carry the error along.
	s.Phases[0].Phase.StartDate = d(2023, 12, 1)

	out := ShiftStartDate(d(2024, 1, 1), d(2024, 1, 8), s)
	assert.Equal(t, d(2024, 1, 8), out.Phases[0].Phase.StartDate)
}

func TestExtend_ContractsDuration(t *testing.T) {
	s := ShiftStartDate(d(2024, 1, 1), d(2024, 1, 8), singleTaskSchedule())

	out, clamped := Extend(-3, s)
	got := out.Phases[0].Tasks[0]
	assert.Equal(t, 2, got.Duration)
	assert.Equal(t, AddDays(got.StartDate, 2), got.EndDate())
	assert.Empty(t, clamped)
}

func TestExtend_ClampsAtZero(t *testing.T) {
	s := singleTaskSchedule()
	s.Phases[0].Tasks = append(s.Phases[0].Tasks, task("t2", d(2024, 1, 2), 10))

	out, clamped := Extend(-7, s)
	assert.Equal(t, 0, out.Phases[0].Tasks[0].Duration)
	assert.Equal(t, 3, out.Phases[0].Tasks[1].Duration)
	assert.Equal(t, []string{"t1"}, clamped)
}

func TestExtend_MovesMaterialsAndKeepsJobStart(t *testing.T) {
	s := singleTaskSchedule()
	s.Phases = append(s.Phases, PhaseSchedule{
		Phase:     domain.Phase{ID: "p2", StartDate: d(2024, 1, 10)},
		Materials: []domain.Material{material("m1", d(2024, 1, 10))},
	})

	out, _ := Extend(4, s)
	assert.Equal(t, d(2024, 1, 1), out.JobStart)
	assert.Equal(t, 9, out.Phases[0].Tasks[0].Duration)
	assert.Equal(t, d(2024, 1, 1), out.Phases[0].Tasks[0].StartDate, "task starts do not move")
	assert.Equal(t, d(2024, 1, 14), out.Phases[1].Materials[0].DueDate)
	assert.Equal(t, d(2024, 1, 14), out.Phases[1].Phase.StartDate)
}

func TestExtend_EmptyPhaseKeepsJobStart(t *testing.T) {
	s := Schedule{
		JobStart: d(2024, 3, 1),
		Phases:   []PhaseSchedule{{Phase: domain.Phase{ID: "p1"}}},
	}
	out, clamped := Extend(-5, s)
	require.Len(t, out.Phases, 1)
	assert.Equal(t, d(2024, 3, 1), out.Phases[0].Phase.StartDate)
	assert.Empty(t, clamped)
}
