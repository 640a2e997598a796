package schedule

import (
	"errors"
	"testing"
	"time"

	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func full24(patient string, date time.Time, state models.ShiftState) models.Shift {
	return models.Shift{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		PatientID:      patient,
		CaregiverID:    "c1",
		Date:           date,
		ScheduledStart: tod(7, 0),
		ScheduledEnd:   tod(7, 0),
		ShiftType:      models.ShiftTypeFull24,
		State:          state,
	}
}

func TestCanSchedule(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		existing  []models.Shift
		date      time.Time
		shiftType models.ShiftType
		conflict  bool
	}{
		{name: "empty day", date: day, shiftType: models.ShiftTypeFull24},
		{name: "second full24 rejected", existing: []models.Shift{full24("p1", day, models.ShiftStateScheduled)}, date: day, shiftType: models.ShiftTypeFull24, conflict: true},
		{name: "partial shift on full24 day rejected", existing: []models.Shift{full24("p1", day, models.ShiftStateActive)}, date: day, shiftType: models.ShiftTypeMorning, conflict: true},
		{name: "cancelled full24 does not block", existing: []models.Shift{full24("p1", day, models.ShiftStateCancelled)}, date: day, shiftType: models.ShiftTypeFull24},
		{name: "completed full24 still blocks", existing: []models.Shift{full24("p1", day, models.ShiftStateCompleted)}, date: day, shiftType: models.ShiftTypeNight, conflict: true},
		{name: "previous day full24 does not block", existing: []models.Shift{full24("p1", day.AddDate(0, 0, -1), models.ShiftStateScheduled)}, date: day, shiftType: models.ShiftTypeMorning},
		{name: "other patient does not block", existing: []models.Shift{full24("p2", day, models.ShiftStateScheduled)}, date: day, shiftType: models.ShiftTypeFull24},
		{
			name: "partial shifts never conflict",
			existing: []models.Shift{{
				PatientID: "p1", Date: day, ShiftType: models.ShiftTypeMorning, State: models.ShiftStateScheduled,
				ScheduledStart: tod(7, 0), ScheduledEnd: tod(13, 0),
			}},
			date: day, shiftType: models.ShiftTypeMorning,
		},
		{
			name: "full24 allowed over partial shift",
			existing: []models.Shift{{
				PatientID: "p1", Date: day, ShiftType: models.ShiftTypeEvening, State: models.ShiftStateScheduled,
				ScheduledStart: tod(13, 0), ScheduledEnd: tod(19, 0),
			}},
			date: day, shiftType: models.ShiftTypeFull24,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanSchedule(tc.existing, "p1", tc.date, tc.shiftType)
			if !tc.conflict {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var conflict *apperrors.OccupancyConflictError
			require.True(t, errors.As(err, &conflict))
			assert.Equal(t, "p1", conflict.PatientID)
			assert.Equal(t, "2024-03-01", conflict.Date)
			assert.Equal(t, string(tc.shiftType), conflict.RequestedType)
		})
	}
}

func TestCanScheduleAcceptsAfterCancellation(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	existing := []models.Shift{full24("p1", day, models.ShiftStateScheduled)}

	assert.True(t, apperrors.IsOccupancyConflict(CanSchedule(existing, "p1", day, models.ShiftTypeFull24)))

	tr, err := NewLifecycleManager(time.UTC).Cancel(existing[0])
	require.NoError(t, err)
	existing[0] = tr.Shift

	assert.NoError(t, CanSchedule(existing, "p1", day, models.ShiftTypeFull24))
}
