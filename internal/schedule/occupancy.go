package schedule

import (
	"time"

	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"
)

// CanSchedule checks whether a shift of shiftType may be added for patientID
// on date, given the shifts already stored. It returns nil when allowed and an
// *errors.OccupancyConflictError otherwise.
//
// A non-cancelled full24 shift closes its date to every new shift, including
// another full24. Only the anchoring date counts: the continuation of a full24
// shift from the previous day does not block anything. Overlaps between
// partial shifts are not checked here.
func CanSchedule(existing []models.Shift, patientID string, date time.Time, shiftType models.ShiftType) error {
	for i := range existing {
		s := &existing[i]
		if s.PatientID != patientID || s.ShiftType != models.ShiftTypeFull24 {
			continue
		}
		if s.State == models.ShiftStateCancelled || !models.SameDate(s.Date, date) {
			continue
		}
		return &apperrors.OccupancyConflictError{
			PatientID:          patientID,
			Date:               date.Format("2006-01-02"),
			RequestedType:      string(shiftType),
			ConflictingShiftID: s.ID.String(),
		}
	}
	return nil
}
