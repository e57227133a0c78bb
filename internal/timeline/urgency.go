package timeline

import (
	"sort"
	"time"

	"github.com/alexanderramin/jobtrack/internal/domain"
)

// DefaultWindowDays is the width of the "due soon" bucket.
const DefaultWindowDays = 7

type Bucket string

const (
	BucketNone          Bucket = ""
	BucketOverdue       Bucket = "overdue"
	BucketNextSevenDays Bucket = "next_seven_days"
	BucketSevenDaysPlus Bucket = "seven_days_plus"
)

// Buckets holds the incomplete-item counts per urgency bucket.
type Buckets struct {
	Overdue       int
	NextSevenDays int
	SevenDaysPlus int
}

// Total returns the number of incomplete items counted.
func (b Buckets) Total() int {
	return b.Overdue + b.NextSevenDays + b.SevenDaysPlus
}

// Fractions returns each bucket's share of the total. ok is false when
// there is nothing to display.
func (b Buckets) Fractions() (overdue, next, later float64, ok bool) {
	total := b.Total()
	if total == 0 {
		return 0, 0, 0, false
	}
	t := float64(total)
	return float64(b.Overdue) / t, float64(b.NextSevenDays) / t, float64(b.SevenDaysPlus) / t, true
}

func (b *Buckets) add(bucket Bucket) {
	switch bucket {
	case BucketOverdue:
		b.Overdue++
	case BucketNextSevenDays:
		b.NextSevenDays++
	case BucketSevenDaysPlus:
		b.SevenDaysPlus++
	}
}

// ClassifyDue places a due date into exactly one bucket relative to today:
// strictly before today is overdue, [today, today+window] is due soon, and
// anything later is beyond the window.
func ClassifyDue(due, today time.Time, windowDays int) Bucket {
	d := Day(due)
	t := Day(today)
	switch {
	case d.Before(t):
		return BucketOverdue
	case !d.After(AddDays(t, windowDays)):
		return BucketNextSevenDays
	default:
		return BucketSevenDaysPlus
	}
}

// TaskBucket classifies a task by its end date. Completed tasks get BucketNone.
func TaskBucket(t domain.Task, today time.Time, windowDays int) Bucket {
	if t.IsComplete() {
		return BucketNone
	}
	return ClassifyDue(t.EndDate(), today, windowDays)
}

// MaterialBucket classifies a material by its due date. Completed materials get BucketNone.
func MaterialBucket(m domain.Material, today time.Time, windowDays int) Bucket {
	if m.IsComplete() {
		return BucketNone
	}
	return ClassifyDue(m.DueDate, today, windowDays)
}

// Urgency counts incomplete tasks and materials per bucket using the
// default seven-day window.
func Urgency(tasks []domain.Task, materials []domain.Material, today time.Time) Buckets {
	return UrgencyWithin(tasks, materials, today, DefaultWindowDays)
}

// UrgencyWithin is Urgency with a configurable window.
func UrgencyWithin(tasks []domain.Task, materials []domain.Material, today time.Time, windowDays int) Buckets {
	var b Buckets
	for i := range tasks {
		b.add(TaskBucket(tasks[i], today, windowDays))
	}
	for i := range materials {
		b.add(MaterialBucket(materials[i], today, windowDays))
	}
	return b
}

// UrgentItem is one incomplete task or material with its bucket.
type UrgentItem struct {
	Kind    domain.ItemKind
	ID      string
	PhaseID string
	Title   string
	Due     time.Time
	Bucket  Bucket
}

// ClassifyItems lists every incomplete item with its bucket, ordered by due
// date then title.
func ClassifyItems(tasks []domain.Task, materials []domain.Material, today time.Time, windowDays int) []UrgentItem {
	var items []UrgentItem
	for _, t := range tasks {
		if b := TaskBucket(t, today, windowDays); b != BucketNone {
			items = append(items, UrgentItem{
				Kind: domain.KindTask, ID: t.ID, PhaseID: t.PhaseID,
				Title: t.Title, Due: Day(t.EndDate()), Bucket: b,
			})
		}
	}
	for _, m := range materials {
		if b := MaterialBucket(m, today, windowDays); b != BucketNone {
			items = append(items, UrgentItem{
				Kind: domain.KindMaterial, ID: m.ID, PhaseID: m.PhaseID,
				Title: m.Title, Due: Day(m.DueDate), Bucket: b,
			})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Due.Equal(items[j].Due) {
			return items[i].Due.Before(items[j].Due)
		}
		return items[i].Title < items[j].Title
	})
	return items
}
