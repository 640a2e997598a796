package models

// ShiftType defines the kinds of caregiver shifts
type ShiftType string

const (
	ShiftTypeMorning ShiftType = "morning"
	ShiftTypeEvening ShiftType = "evening"
	ShiftTypeNight   ShiftType = "night"
	ShiftTypeFull24  ShiftType = "full24"
	ShiftTypeCustom  ShiftType = "custom"
)

// ShiftState is the lifecycle state of a shift
type ShiftState string

const (
	ShiftStateScheduled ShiftState = "scheduled"
	ShiftStateConfirmed ShiftState = "confirmed"
	ShiftStateActive    ShiftState = "active"
	ShiftStateCompleted ShiftState = "completed"
	ShiftStateCancelled ShiftState = "cancelled"
)

// IncidentSeverity grades an incident recorded at check-out
type IncidentSeverity string

const (
	SeverityMinor    IncidentSeverity = "minor"
	SeverityModerate IncidentSeverity = "moderate"
	SeveritySevere   IncidentSeverity = "severe"
)

// IsValid checks if the ShiftType is valid
func (t ShiftType) IsValid() bool {
	switch t {
	case ShiftTypeMorning, ShiftTypeEvening, ShiftTypeNight, ShiftTypeFull24, ShiftTypeCustom:
		return true
	}
	return false
}

// DefaultWindow returns the preset start and end for the shift type.
// ok is false for custom shifts, which always need explicit times.
func (t ShiftType) DefaultWindow() (start, end TimeOfDay, ok bool) {
	switch t {
	case ShiftTypeMorning:
		return NewTimeOfDay(7, 0), NewTimeOfDay(13, 0), true
	case ShiftTypeEvening:
		return NewTimeOfDay(13, 0), NewTimeOfDay(19, 0), true
	case ShiftTypeNight:
		return NewTimeOfDay(19, 0), NewTimeOfDay(7, 0), true
	case ShiftTypeFull24:
		return NewTimeOfDay(7, 0), NewTimeOfDay(7, 0), true
	}
	return 0, 0, false
}

// IsValid checks if the ShiftState is valid
func (s ShiftState) IsValid() bool {
	switch s {
	case ShiftStateScheduled, ShiftStateConfirmed, ShiftStateActive, ShiftStateCompleted, ShiftStateCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s ShiftState) IsTerminal() bool {
	return s == ShiftStateCompleted || s == ShiftStateCancelled
}

// IsValid checks if the IncidentSeverity is valid
func (s IncidentSeverity) IsValid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}
