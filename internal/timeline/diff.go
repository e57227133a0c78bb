package timeline

import "time"

type UpdateKind string

const (
	UpdateJob      UpdateKind = "job"
	UpdatePhase    UpdateKind = "phase"
	UpdateTask     UpdateKind = "task"
	UpdateMaterial UpdateKind = "material"
)

// DateUpdate is one changed date (and, for tasks, duration) produced by a
// cascade. The full set for a job must be applied atomically.
type DateUpdate struct {
	Kind        UpdateKind
	ID          string
	Title       string
	OldDate     time.Time
	NewDate     time.Time
	OldDuration int
	NewDuration int
}

// Diff lists the job start and every phase, task and material whose date or
// duration differs between before and after. Entities are matched by ID;
// anything present in only one snapshot is ignored.
func Diff(before, after Schedule) []DateUpdate {
	type taskDates struct {
		start    time.Time
		duration int
	}
	phases := make(map[string]time.Time)
	tasks := make(map[string]taskDates)
	materials := make(map[string]time.Time)

	for _, p := range before.Phases {
		phases[p.Phase.ID] = Day(p.Phase.StartDate)
		for _, t := range p.Tasks {
			tasks[t.ID] = taskDates{start: Day(t.StartDate), duration: t.Duration}
		}
		for _, m := range p.Materials {
			materials[m.ID] = Day(m.DueDate)
		}
	}

	var updates []DateUpdate
	if !Day(before.JobStart).Equal(Day(after.JobStart)) {
		updates = append(updates, DateUpdate{
			Kind: UpdateJob, ID: after.JobID,
			OldDate: Day(before.JobStart), NewDate: Day(after.JobStart),
		})
	}
	for _, p := range after.Phases {
		if old, ok := phases[p.Phase.ID]; ok && !old.Equal(Day(p.Phase.StartDate)) {
			updates = append(updates, DateUpdate{
				Kind: UpdatePhase, ID: p.Phase.ID, Title: p.Phase.Title,
				OldDate: old, NewDate: Day(p.Phase.StartDate),
			})
		}
		for _, t := range p.Tasks {
			old, ok := tasks[t.ID]
			if !ok {
				continue
			}
			newStart := Day(t.StartDate)
			if !old.start.Equal(newStart) || old.duration != t.Duration {
				updates = append(updates, DateUpdate{
					Kind: UpdateTask, ID: t.ID, Title: t.Title,
					OldDate: old.start, NewDate: newStart,
					OldDuration: old.duration, NewDuration: t.Duration,
				})
			}
		}
		for _, m := range p.Materials {
			if old, ok := materials[m.ID]; ok && !old.Equal(Day(m.DueDate)) {
				updates = append(updates, DateUpdate{
					Kind: UpdateMaterial, ID: m.ID, Title: m.Title,
					OldDate: old, NewDate: Day(m.DueDate),
				})
			}
		}
	}
	return updates
}
