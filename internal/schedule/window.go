package schedule

import (
	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"
)

// ResolveWindow fills in and checks the scheduled window for a shift type.
// Missing times fall back to the type's preset. A window whose end equals its
// start is a 24-hour span and is only accepted, and required, for full24.
func ResolveWindow(shiftType models.ShiftType, start, end *models.TimeOfDay) (models.TimeOfDay, models.TimeOfDay, error) {
	if !shiftType.IsValid() {
		return 0, 0, apperrors.NewValidationError("shift_type", "must be one of morning, evening, night, full24, custom")
	}

	defStart, defEnd, hasDefault := shiftType.DefaultWindow()
	if start == nil || end == nil {
		if !hasDefault {
			return 0, 0, apperrors.NewValidationError("scheduled_start", "custom shifts need explicit start and end times")
		}
	}

	s, e := defStart, defEnd
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	// a full24 given one bound spans 24 hours from it
	if shiftType == models.ShiftTypeFull24 && (start == nil) != (end == nil) {
		if start == nil {
			s = e
		} else {
			e = s
		}
	}

	if !s.IsValid() || !e.IsValid() {
		return 0, 0, apperrors.ErrInvalidTimeOfDay
	}

	if shiftType == models.ShiftTypeFull24 {
		if s != e {
			return 0, 0, apperrors.NewValidationError("scheduled_end", "a full24 shift must end at its start time on the next day")
		}
		return s, e, nil
	}
	if s == e {
		return 0, 0, apperrors.ErrZeroDuration
	}
	return s, e, nil
}
