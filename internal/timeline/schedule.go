package timeline

import (
	"slices"
	"time"

	"github.com/alexanderramin/jobtrack/internal/domain"
)

// PhaseSchedule is a phase together with the dated children that drive it.
type PhaseSchedule struct {
	Phase     domain.Phase
	Tasks     []domain.Task
	Materials []domain.Material
}

// Span returns the phase's range, falling back to anchor when empty.
func (p PhaseSchedule) Span(anchor time.Time) Span {
	return PhaseSpan(anchor, p.Tasks, p.Materials)
}

// Schedule is a consistent snapshot of one job's dated entities.
type Schedule struct {
	JobID    string
	JobStart time.Time
	Phases   []PhaseSchedule
}

// Span computes the job span of the snapshot as of today.
func (s Schedule) Span(today time.Time) JobSpan {
	spans := make([]Span, len(s.Phases))
	for i, p := range s.Phases {
		spans[i] = p.Span(s.JobStart)
	}
	return ComputeJobSpan(s.JobStart, spans, today)
}

// Tasks returns every task across all phases, in phase order.
func (s Schedule) Tasks() []domain.Task {
	var out []domain.Task
	for _, p := range s.Phases {
		out = append(out, p.Tasks...)
	}
	return out
}

// Materials returns every material across all phases, in phase order.
func (s Schedule) Materials() []domain.Material {
	var out []domain.Material
	for _, p := range s.Phases {
		out = append(out, p.Materials...)
	}
	return out
}

// Clone returns a deep copy so engine operations never alias caller slices.
func (s Schedule) Clone() Schedule {
	out := Schedule{JobID: s.JobID, JobStart: s.JobStart}
	if s.Phases == nil {
		return out
	}
	out.Phases = make([]PhaseSchedule, len(s.Phases))
	for i, p := range s.Phases {
		cp := PhaseSchedule{Phase: p.Phase}
		if p.Tasks != nil {
			cp.Tasks = make([]domain.Task, len(p.Tasks))
			for j, t := range p.Tasks {
				t.Assignees = slices.Clone(t.Assignees)
				cp.Tasks[j] = t
			}
		}
		if p.Materials != nil {
			cp.Materials = make([]domain.Material, len(p.Materials))
			for j, m := range p.Materials {
				m.Assignees = slices.Clone(m.Assignees)
				cp.Materials[j] = m
			}
		}
		out.Phases[i] = cp
	}
	return out
}

// Normalize recomputes every phase start from its children, anchoring empty
// phases to the job start. Child dates are left untouched.
func Normalize(s Schedule) Schedule {
	out := s.Clone()
	recomputePhaseStarts(&out)
	return out
}

func recomputePhaseStarts(s *Schedule) {
	for i := range s.Phases {
		s.Phases[i].Phase.StartDate = s.Phases[i].Span(s.JobStart).Start
	}
}
