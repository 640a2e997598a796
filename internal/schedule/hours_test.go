package schedule

import (
	"testing"
	"time"

	"caregiver-shifts-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursBetween(t *testing.T) {
	start := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, 8.0, HoursBetween(start, start.Add(8*time.Hour)))
	assert.Equal(t, 7.8, HoursBetween(start, start.Add(7*time.Hour+45*time.Minute)))
	assert.Equal(t, 7.7, HoursBetween(start, start.Add(7*time.Hour+44*time.Minute)))
	assert.Equal(t, 0.0, HoursBetween(start, start.Add(-time.Hour)))
}

func TestScheduledHours(t *testing.T) {
	assert.Equal(t, 8.0, ScheduledHours(tod(23, 0), tod(7, 0)))
	assert.Equal(t, 24.0, ScheduledHours(tod(7, 0), tod(7, 0)))
	assert.Equal(t, 6.5, ScheduledHours(tod(7, 0), tod(13, 30)))
	assert.Equal(t, 0.3, ScheduledHours(tod(7, 0), tod(7, 15)))
}

func TestWeekBounds(t *testing.T) {
	// 2024-03-06 is a Wednesday
	start, end := WeekBounds(time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-03-04", start.Format("2006-01-02"))
	assert.Equal(t, "2024-03-10", end.Format("2006-01-02"))

	start, _ = WeekBounds(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-03-04", start.Format("2006-01-02"))
}

func TestAggregate(t *testing.T) {
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	sunday := monday.AddDate(0, 0, 6)

	shifts := []models.Shift{
		{CaregiverID: "c1", CaregiverName: "Ana", Date: monday, State: models.ShiftStateCompleted, ScheduledHours: 8, ActualHours: 8.5},
		{CaregiverID: "c1", CaregiverName: "Ana", Date: monday.AddDate(0, 0, 1), State: models.ShiftStateActive, ScheduledHours: 8},
		{CaregiverID: "c2", CaregiverName: "Bia", Date: sunday, State: models.ShiftStateCompleted, ScheduledHours: 12, ActualHours: 11.7},
		{CaregiverID: "c2", CaregiverName: "Bia", Date: monday, State: models.ShiftStateCancelled, ScheduledHours: 6},
		{CaregiverID: "c3", CaregiverName: "Caio", Date: sunday.AddDate(0, 0, 1), State: models.ShiftStateCompleted, ScheduledHours: 6, ActualHours: 6},
	}

	rows := Aggregate(shifts, monday, sunday)
	require.Len(t, rows, 2)

	assert.Equal(t, CaregiverHours{CaregiverID: "c1", CaregiverName: "Ana", ShiftCount: 2, ScheduledHours: 16.0, ActualHours: 8.5}, rows[0])
	assert.Equal(t, -7.5, rows[0].Variance())

	assert.Equal(t, "c2", rows[1].CaregiverID)
	assert.Equal(t, 1, rows[1].ShiftCount)
	assert.Equal(t, 12.0, rows[1].ScheduledHours)
	assert.Equal(t, 11.7, rows[1].ActualHours)
	assert.Equal(t, -0.3, rows[1].Variance())
}

func TestAggregateSumsExactly(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	var shifts []models.Shift
	for i := 0; i < 10; i++ {
		shifts = append(shifts, models.Shift{CaregiverID: "c1", Date: day, State: models.ShiftStateCompleted, ScheduledHours: 0.1, ActualHours: 0.1})
	}

	rows := Aggregate(shifts, day, day)
	require.Len(t, rows, 1)
	assert.Equal(t, 1.0, rows[0].ScheduledHours)
	assert.Equal(t, 1.0, rows[0].ActualHours)
}

func TestAggregateEmpty(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, Aggregate(nil, day, day))
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 7.8, RoundHours(7.75))
	assert.Equal(t, 16.0, RoundHours(8.1+7.9))
	assert.Equal(t, -0.3, RoundHours(-0.25))
}
