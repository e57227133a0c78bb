package timeline

import "time"

// ShiftStartDate moves a job from oldStart to newStart and carries every task
// start and material due date by the same signed day offset. Durations are
// relative and stay as they are. Phase starts are recomputed from the shifted
// children rather than shifted themselves, so a stale stored phase start
// cannot drift further.
//
// A zero offset returns s unchanged, without recomputing phase starts, so
// shifts compose only over schedules whose phase starts are already derived
// from their children (see Normalize). Stored schedules are kept that way by
// every write path.
func ShiftStartDate(oldStart, newStart time.Time, s Schedule) Schedule {
	offset := DaysBetween(oldStart, newStart)
	if offset == 0 {
		return s
	}

	out := s.Clone()
	out.JobStart = Day(newStart)
	for i := range out.Phases {
		p := &out.Phases[i]
		for j := range p.Tasks {
			p.Tasks[j].StartDate = AddDays(p.Tasks[j].StartDate, offset)
		}
		for j := range p.Materials {
			p.Materials[j].DueDate = AddDays(p.Materials[j].DueDate, offset)
		}
	}
	recomputePhaseStarts(&out)
	return out
}

// Extend applies a uniform extension (negative to contract) to a job's
// schedule without moving the job start. Task durations grow by
// extensionDays but never drop below zero; the IDs of tasks that hit that
// floor are returned as clamped. Material due dates move by extensionDays
// since a material has no duration of its own.
func Extend(extensionDays int, s Schedule) (Schedule, []string) {
	out := s.Clone()
	var clamped []string
	for i := range out.Phases {
		p := &out.Phases[i]
		for j := range p.Tasks {
			d := p.Tasks[j].Duration + extensionDays
			if d < 0 {
				d = 0
				clamped = append(clamped, p.Tasks[j].ID)
			}
			p.Tasks[j].Duration = d
		}
		for j := range p.Materials {
			p.Materials[j].DueDate = AddDays(p.Materials[j].DueDate, extensionDays)
		}
	}
	recomputePhaseStarts(&out)
	return out, clamped
}
