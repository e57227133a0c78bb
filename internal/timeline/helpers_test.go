package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/jobtrack/internal/domain"
)

func d(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func task(id string, start time.Time, duration int) domain.Task {
	return domain.Task{ID: id, Title: "Task " + id, StartDate: start, Duration: duration, Status: domain.ItemIncomplete}
}

func material(id string, due time.Time) domain.Material {
	return domain.Material{ID: id, Title: "Material " + id, DueDate: due, Status: domain.ItemIncomplete}
}

// datesOf flattens every date-bearing field into a comparable map.
func datesOf(s Schedule) map[string]string {
	out := map[string]string{"job": s.JobStart.Format(DateLayout)}
	for _, p := range s.Phases {
		out["phase:"+p.Phase.ID] = p.Phase.StartDate.Format(DateLayout)
		for _, t := range p.Tasks {
			out["task:"+t.ID] = fmt.Sprintf("%s+%d", t.StartDate.Format(DateLayout), t.Duration)
		}
		for _, m := range p.Materials {
			out["material:"+m.ID] = m.DueDate.Format(DateLayout)
		}
	}
	return out
}
