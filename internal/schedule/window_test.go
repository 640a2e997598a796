package schedule

import (
	"testing"

	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(t models.TimeOfDay) *models.TimeOfDay { return &t }

func TestResolveWindow(t *testing.T) {
	testCases := []struct {
		name      string
		shiftType models.ShiftType
		start     *models.TimeOfDay
		end       *models.TimeOfDay
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "morning preset", shiftType: models.ShiftTypeMorning, wantStart: "07:00", wantEnd: "13:00"},
		{name: "night preset crosses midnight", shiftType: models.ShiftTypeNight, wantStart: "19:00", wantEnd: "07:00"},
		{name: "full24 from start only", shiftType: models.ShiftTypeFull24, start: ptr(tod(8, 0)), wantStart: "08:00", wantEnd: "08:00"},
		{name: "full24 from end only", shiftType: models.ShiftTypeFull24, end: ptr(tod(8, 0)), wantStart: "08:00", wantEnd: "08:00"},
		{name: "full24 with mismatched end", shiftType: models.ShiftTypeFull24, start: ptr(tod(8, 0)), end: ptr(tod(20, 0)), wantErr: true},
		{name: "custom explicit", shiftType: models.ShiftTypeCustom, start: ptr(tod(22, 0)), end: ptr(tod(2, 0)), wantStart: "22:00", wantEnd: "02:00"},
		{name: "custom without times", shiftType: models.ShiftTypeCustom, wantErr: true},
		{name: "zero duration", shiftType: models.ShiftTypeCustom, start: ptr(tod(9, 0)), end: ptr(tod(9, 0)), wantErr: true},
		{name: "unknown type", shiftType: "weekend", wantErr: true},
		{name: "out of range time", shiftType: models.ShiftTypeCustom, start: ptr(models.TimeOfDay(2000)), end: ptr(tod(9, 0)), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, e, err := ResolveWindow(tc.shiftType, tc.start, tc.end)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStart, s.String())
			assert.Equal(t, tc.wantEnd, e.String())
		})
	}
}
