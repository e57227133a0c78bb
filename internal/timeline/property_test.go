package timeline

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

var propertyBase = d(2024, 1, 1)

func randomDate(rng *rand.Rand) time.Time {
	return AddDays(propertyBase, rng.Intn(400)-100)
}

// randomSchedule builds a normalized schedule with 0-5 phases, some of them
// empty, and a mix of complete and incomplete children.
func randomSchedule(rng *rand.Rand) Schedule {
	s := Schedule{JobID: "job", JobStart: randomDate(rng)}
	numPhases := rng.Intn(6)
	for p := 0; p < numPhases; p++ {
		ps := PhaseSchedule{Phase: domain.Phase{ID: fmt.Sprintf("p%d", p), JobID: "job"}}
		for i := rng.Intn(5); i > 0; i-- {
			t := task(fmt.Sprintf("p%d-t%d", p, i), randomDate(rng), rng.Intn(30))
			if rng.Intn(3) == 0 {
				t.Status = domain.ItemComplete
			}
			ps.Tasks = append(ps.Tasks, t)
		}
		for i := rng.Intn(4); i > 0; i-- {
			m := material(fmt.Sprintf("p%d-m%d", p, i), randomDate(rng))
			if rng.Intn(3) == 0 {
				m.Status = domain.ItemComplete
			}
			ps.Materials = append(ps.Materials, m)
		}
		s.Phases = append(s.Phases, ps)
	}
	return Normalize(s)
}

func TestProperty_ZeroShiftIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		s := randomSchedule(rng)
		out := ShiftStartDate(s.JobStart, s.JobStart, s)
		assert.Equal(t, s, out, "trial %d", trial)
	}
}

func TestProperty_ShiftsCompose(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 300; trial++ {
		s := randomSchedule(rng)
		a := s.JobStart
		b := AddDays(a, rng.Intn(61)-30)
		c := AddDays(a, rng.Intn(61)-30)
		if trial%10 == 0 {
			c = a
		}

		stepwise := ShiftStartDate(b, c, ShiftStartDate(a, b, s))
		direct := ShiftStartDate(a, c, s)
		assert.Equal(t, datesOf(direct), datesOf(stepwise), "trial %d: a=%s b=%s c=%s",
			trial, a.Format(DateLayout), b.Format(DateLayout), c.Format(DateLayout))
	}
}

func TestProperty_RoundTripShiftDerivesStalePhaseStarts(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		stale := randomSchedule(rng)
		for i := range stale.Phases {
			stale.Phases[i].Phase.StartDate = randomDate(rng)
		}
		a := stale.JobStart
		b := AddDays(a, 1+rng.Intn(30))

		roundTrip := ShiftStartDate(b, a, ShiftStartDate(a, b, stale))
		assert.Equal(t, datesOf(Normalize(stale)), datesOf(roundTrip), "trial %d", trial)
		assert.Equal(t, datesOf(stale), datesOf(ShiftStartDate(a, a, stale)), "trial %d: zero shift keeps stored phase starts", trial)
	}
}

func TestProperty_ShiftAndExtendCommute(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 300; trial++ {
		s := randomSchedule(rng)
		newStart := AddDays(s.JobStart, rng.Intn(41)-20)
		ext := rng.Intn(41) - 20

		shiftFirst, _ := Extend(ext, ShiftStartDate(s.JobStart, newStart, s))
		extended, _ := Extend(ext, s)
		extendFirst := ShiftStartDate(s.JobStart, newStart, extended)

		assert.Equal(t, datesOf(shiftFirst), datesOf(extendFirst), "trial %d", trial)
	}
}

func TestProperty_ExtensionNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		s := randomSchedule(rng)
		ext := -rng.Intn(1000)
		out, clamped := Extend(ext, s)

		clampedSet := make(map[string]bool, len(clamped))
		for _, id := range clamped {
			clampedSet[id] = true
		}
		for _, p := range out.Phases {
			for _, tk := range p.Tasks {
				assert.GreaterOrEqual(t, tk.Duration, 0, "trial %d task %s", trial, tk.ID)
				if clampedSet[tk.ID] {
					assert.Equal(t, 0, tk.Duration)
				}
			}
		}
	}
}

func TestProperty_BucketsPartitionIncompleteItems(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		s := randomSchedule(rng)
		now := randomDate(rng)
		tasks, materials := s.Tasks(), s.Materials()

		incomplete := 0
		for _, tk := range tasks {
			if !tk.IsComplete() {
				incomplete++
			}
		}
		for _, m := range materials {
			if !m.IsComplete() {
				incomplete++
			}
		}

		b := Urgency(tasks, materials, now)
		assert.Equal(t, incomplete, b.Total(), "trial %d", trial)

		items := ClassifyItems(tasks, materials, now, DefaultWindowDays)
		assert.Len(t, items, incomplete, "trial %d", trial)
		seen := make(map[string]Bucket, len(items))
		var recount Buckets
		for _, it := range items {
			_, dup := seen[it.ID]
			assert.False(t, dup, "trial %d: %s classified twice", trial, it.ID)
			seen[it.ID] = it.Bucket
			recount.add(it.Bucket)
		}
		assert.Equal(t, b, recount, "trial %d", trial)
	}
}

func TestProperty_PhaseSpanContainsChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 200; trial++ {
		s := randomSchedule(rng)
		for _, p := range s.Phases {
			span := p.Span(s.JobStart)
			assert.False(t, span.End.Before(span.Start), "trial %d", trial)
			for _, tk := range p.Tasks {
				assert.False(t, tk.StartDate.Before(span.Start), "trial %d task %s", trial, tk.ID)
				assert.False(t, tk.EndDate().After(span.End), "trial %d task %s", trial, tk.ID)
			}
			for _, m := range p.Materials {
				assert.False(t, m.DueDate.Before(span.Start), "trial %d material %s", trial, m.ID)
				assert.False(t, m.DueDate.After(span.End), "trial %d material %s", trial, m.ID)
			}
			assert.Equal(t, span.Start, p.Phase.StartDate, "normalized phase start equals span start")
		}
	}
}
