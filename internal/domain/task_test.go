package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTaskEndDate(t *testing.T) {
	task := &Task{StartDate: day(2024, 1, 1), Duration: 5}
	assert.Equal(t, day(2024, 1, 6), task.EndDate())
}

func TestTaskEndDate_ZeroDuration(t *testing.T) {
	task := &Task{StartDate: day(2024, 1, 1)}
	assert.Equal(t, day(2024, 1, 1), task.EndDate())
}

func TestTaskEndDate_CrossesMonth(t *testing.T) {
	task := &Task{StartDate: day(2024, 2, 27), Duration: 3}
	assert.Equal(t, day(2024, 3, 1), task.EndDate(), "2024 is a leap year")
}

func TestTaskMarkComplete(t *testing.T) {
	task := &Task{Status: ItemIncomplete}
	task.MarkComplete(testNow)
	assert.True(t, task.IsComplete())
	assert.Equal(t, testNow, task.UpdatedAt)
}

func TestTaskMarkComplete_AlreadyComplete(t *testing.T) {
	earlier := testNow.Add(-time.Hour)
	task := &Task{Status: ItemComplete, UpdatedAt: earlier}
	task.MarkComplete(testNow)
	assert.Equal(t, earlier, task.UpdatedAt, "should not touch UpdatedAt")
}

func TestTaskReopen(t *testing.T) {
	task := &Task{Status: ItemComplete}
	require.NoError(t, task.Reopen(testNow))
	assert.Equal(t, ItemIncomplete, task.Status)
}

func TestTaskReopen_FromIncomplete(t *testing.T) {
	task := &Task{Status: ItemIncomplete}
	err := task.Reopen(testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incomplete")
}

func TestTaskValidate(t *testing.T) {
	cases := []struct {
		name string
		task Task
		want string
	}{
		{"missing title", Task{StartDate: day(2024, 1, 1)}, "title"},
		{"negative duration", Task{Title: "Frame", StartDate: day(2024, 1, 1), Duration: -1}, "duration"},
		{"missing start", Task{Title: "Frame"}, "start date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.task.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	ok := Task{Title: "Frame", StartDate: day(2024, 1, 1), Duration: 0}
	assert.NoError(t, ok.Validate())
}

func TestMaterialToggle(t *testing.T) {
	m := &Material{Status: ItemIncomplete}
	m.MarkComplete(testNow)
	assert.True(t, m.IsComplete())
	require.NoError(t, m.Reopen(testNow))
	assert.False(t, m.IsComplete())
	assert.Error(t, m.Reopen(testNow))
}

func TestMaterialValidate(t *testing.T) {
	assert.Error(t, (&Material{DueDate: day(2024, 1, 1)}).Validate())
	assert.Error(t, (&Material{Title: "Lumber"}).Validate())
	assert.NoError(t, (&Material{Title: "Lumber", DueDate: day(2024, 1, 1)}).Validate())
}
