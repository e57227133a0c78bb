package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/jobtrack/internal/domain"
	"github.com/alexanderramin/jobtrack/internal/repository"
	"github.com/alexanderramin/jobtrack/internal/timeline"
)

func resolveJob(ctx context.Context, app *App, input string) (*domain.Job, error) {
	return app.Jobs.Resolve(ctx, input)
}

// resolvePhase accepts a 1-based position, a full or unique-prefix ID, or a
// case-insensitive title.
func resolvePhase(ctx context.Context, app *App, jobID, input string) (*domain.Phase, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("phase is required")
	}
	phases, err := app.Phases.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(phases) {
		return phases[n-1], nil
	}
	for _, p := range phases {
		if strings.EqualFold(p.Title, input) {
			return p, nil
		}
	}
	return matchPrefix("phase", input, phases, func(p *domain.Phase) string { return p.ID })
}

func resolveTask(ctx context.Context, app *App, input string) (*domain.Task, error) {
	jobs, err := app.Jobs.List(ctx, true)
	if err != nil {
		return nil, err
	}
	var all []*domain.Task
	for _, j := range jobs {
		tasks, err := app.Tasks.ListByJob(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, tasks...)
	}
	return matchPrefix("task", input, all, func(t *domain.Task) string { return t.ID })
}

func resolveMaterial(ctx context.Context, app *App, input string) (*domain.Material, error) {
	jobs, err := app.Jobs.List(ctx, true)
	if err != nil {
		return nil, err
	}
	var all []*domain.Material
	for _, j := range jobs {
		materials, err := app.Materials.ListByJob(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, materials...)
	}
	return matchPrefix("material", input, all, func(m *domain.Material) string { return m.ID })
}

func resolveUser(ctx context.Context, app *App, input string) (*domain.User, error) {
	users, err := app.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, strings.TrimSpace(input)) {
			return u, nil
		}
	}
	return matchPrefix("user", input, users, func(u *domain.User) string { return u.ID })
}

// matchPrefix returns the item whose ID equals input, or the single item
// whose ID starts with it.
func matchPrefix[T any](kind, input string, items []T, id func(T) string) (T, error) {
	var zero T
	input = strings.TrimSpace(input)
	if input == "" {
		return zero, fmt.Errorf("%s ID is required", kind)
	}
	var matches []T
	for _, it := range items {
		if strings.EqualFold(id(it), input) {
			return it, nil
		}
		if strings.HasPrefix(strings.ToLower(id(it)), strings.ToLower(input)) {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 0:
		return zero, fmt.Errorf("%s %q: %w", kind, input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return zero, fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func parseDateFlag(name, value string) (time.Time, error) {
	d, err := timeline.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}

// businessDuration returns the calendar days covered by n working days
// starting at start.
func businessDuration(start time.Time, n int) int {
	return timeline.DaysBetween(start, timeline.AddBusinessDays(start, n))
}
