package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/jobtrack/internal/timeline"
)

const filledBlock = "█"

// RenderUrgencyBar renders one bar split into overdue, due-soon and later
// segments proportional to their counts. ok is false when there is nothing
// to display.
func RenderUrgencyBar(b timeline.Buckets, width int) (bar string, ok bool) {
	overdue, next, later, ok := b.Fractions()
	if !ok {
		return "", false
	}
	if width < 3 {
		width = 3
	}

	cells := []int{
		segment(overdue, width, b.Overdue),
		segment(next, width, b.NextSevenDays),
		segment(later, width, b.SevenDaysPlus),
	}
	// Rounding can leave the total off by a cell or two; the largest
	// segment absorbs the difference.
	largest := 0
	for i := range cells {
		if cells[i] > cells[largest] {
			largest = i
		}
	}
	cells[largest] += width - (cells[0] + cells[1] + cells[2])

	return "[" +
		StyleRed.Render(strings.Repeat(filledBlock, cells[0])) +
		StyleYellow.Render(strings.Repeat(filledBlock, cells[1])) +
		StyleGreen.Render(strings.Repeat(filledBlock, cells[2])) +
		"]", true
}

// segment rounds a fraction of width, keeping at least one cell for a
// non-empty bucket.
func segment(frac float64, width, count int) int {
	if count == 0 {
		return 0
	}
	n := int(math.Round(frac * float64(width)))
	if n < 1 {
		n = 1
	}
	return n
}

// Percent renders a fraction as "45%".
func Percent(frac float64) string {
	return fmt.Sprintf("%.0f%%", frac*100)
}
