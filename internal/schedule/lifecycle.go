package schedule

import (
	"time"

	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"
)

// Action names a lifecycle command
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCheckIn  Action = "check-in"
	ActionCheckOut Action = "check-out"
	ActionCancel   Action = "cancel"
)

// Transition is the outcome of a lifecycle command: the updated shift and the
// columns that changed. The store applies it only if the stored state still equals From.
type Transition struct {
	Action Action
	From   models.ShiftState
	To     models.ShiftState
	Shift  models.Shift
	Fields []string
}

// CheckOutInput carries what the caregiver records when leaving
type CheckOutInput struct {
	ExitNotes      string
	Incidents      []models.Incident
	TasksCompleted []models.Task
}

// LifecycleManager applies lifecycle commands to shifts. Delay is measured
// against the scheduled start in Location.
type LifecycleManager struct {
	Location *time.Location
}

// NewLifecycleManager creates a lifecycle manager for the given location
func NewLifecycleManager(loc *time.Location) *LifecycleManager {
	if loc == nil {
		loc = time.UTC
	}
	return &LifecycleManager{Location: loc}
}

// AvailableActions lists the commands accepted from state
func AvailableActions(state models.ShiftState) []Action {
	switch state {
	case models.ShiftStateScheduled:
		return []Action{ActionConfirm, ActionCheckIn, ActionCancel}
	case models.ShiftStateConfirmed:
		return []Action{ActionCheckIn, ActionCancel}
	case models.ShiftStateActive:
		return []Action{ActionCheckOut, ActionCancel}
	default:
		return []Action{}
	}
}

func invalid(s *models.Shift, action Action) error {
	return apperrors.NewInvalidTransitionError(s.ID.String(), string(action), string(s.State))
}

// Confirm moves a scheduled shift to confirmed
func (m *LifecycleManager) Confirm(s models.Shift) (*Transition, error) {
	switch s.State {
	case models.ShiftStateScheduled:
	default:
		return nil, invalid(&s, ActionConfirm)
	}

	from := s.State
	s.State = models.ShiftStateConfirmed
	return &Transition{Action: ActionConfirm, From: from, To: s.State, Shift: s, Fields: []string{"state"}}, nil
}

// CheckIn starts a scheduled or confirmed shift at now and records the arrival delay
func (m *LifecycleManager) CheckIn(s models.Shift, now time.Time, entryNotes string) (*Transition, error) {
	switch s.State {
	case models.ShiftStateScheduled, models.ShiftStateConfirmed:
	default:
		return nil, invalid(&s, ActionCheckIn)
	}

	from := s.State
	started := now
	s.ActualStart = &started
	s.DelayMinutes = DelayMinutes(s.ScheduledStartAt(m.Location), now)
	s.State = models.ShiftStateActive
	fields := []string{"state", "actual_start", "delay_minutes"}
	if entryNotes != "" {
		s.EntryNotes = entryNotes
		fields = append(fields, "entry_notes")
	}
	return &Transition{Action: ActionCheckIn, From: from, To: s.State, Shift: s, Fields: fields}, nil
}

// CheckOut completes an active shift at now, computing the worked hours
func (m *LifecycleManager) CheckOut(s models.Shift, now time.Time, in CheckOutInput) (*Transition, error) {
	switch s.State {
	case models.ShiftStateActive:
	default:
		return nil, invalid(&s, ActionCheckOut)
	}

	incidents := make([]models.Incident, 0, len(in.Incidents))
	for _, inc := range in.Incidents {
		if inc.Category == "" {
			return nil, apperrors.NewValidationError("incidents.category", "category is required")
		}
		if !inc.Severity.IsValid() {
			return nil, apperrors.NewValidationError("incidents.severity", "severity must be minor, moderate or severe")
		}
		if inc.Time.IsZero() {
			inc.Time = now
		}
		incidents = append(incidents, inc)
	}
	tasks := make([]models.Task, 0, len(in.TasksCompleted))
	for _, task := range in.TasksCompleted {
		if task.Description == "" {
			return nil, apperrors.NewValidationError("tasks_completed.description", "description is required")
		}
		tasks = append(tasks, task)
	}

	from := s.State
	if s.ActualStart != nil {
		s.ActualHours = HoursBetween(*s.ActualStart, now)
	} else {
		s.ActualHours = s.ScheduledHours
	}
	ended := now
	s.ActualEnd = &ended
	s.ExitNotes = in.ExitNotes
	s.Incidents = incidents
	s.TasksCompleted = tasks
	s.State = models.ShiftStateCompleted
	return &Transition{
		Action: ActionCheckOut,
		From:   from,
		To:     s.State,
		Shift:  s,
		Fields: []string{"state", "actual_end", "actual_hours", "exit_notes", "incidents", "tasks_completed"},
	}, nil
}

// Cancel ends a shift that has not finished. Recorded actual fields are kept.
func (m *LifecycleManager) Cancel(s models.Shift) (*Transition, error) {
	switch s.State {
	case models.ShiftStateScheduled, models.ShiftStateConfirmed, models.ShiftStateActive:
	default:
		return nil, invalid(&s, ActionCancel)
	}

	from := s.State
	s.State = models.ShiftStateCancelled
	return &Transition{Action: ActionCancel, From: from, To: s.State, Shift: s, Fields: []string{"state"}}, nil
}

// DelayMinutes returns whole minutes from scheduled to arrived, or 0 when early or on time
func DelayMinutes(scheduled, arrived time.Time) int {
	d := int(arrived.Sub(scheduled) / time.Minute)
	if d < 0 {
		return 0
	}
	return d
}
