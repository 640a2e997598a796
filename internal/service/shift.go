package service

import (
	"context"
	"errors"
	"time"

	"caregiver-shifts-backend/internal/auth"
	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"
	"caregiver-shifts-backend/internal/logger"
	"caregiver-shifts-backend/internal/repository"
	"caregiver-shifts-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxTimelineDays bounds a single timeline or listing request
const MaxTimelineDays = 62

// ShiftService orchestrates scheduling, lifecycle commands and calendar queries
type ShiftService struct {
	repo       repository.ShiftRepositoryInterface
	directory  CaregiverDirectory
	authorizer *auth.Authorizer
	lifecycle  *schedule.LifecycleManager
	validator  *validator.Validate
	location   *time.Location
	now        func() time.Time
}

// NewShiftService creates a new shift service. loc is the zone used for
// check-in delays and timeline placement.
func NewShiftService(repo repository.ShiftRepositoryInterface, directory CaregiverDirectory, authorizer *auth.Authorizer, v *validator.Validate, loc *time.Location) *ShiftService {
	if loc == nil {
		loc = time.UTC
	}
	return &ShiftService{
		repo:       repo,
		directory:  directory,
		authorizer: authorizer,
		lifecycle:  schedule.NewLifecycleManager(loc),
		validator:  v,
		location:   loc,
		now:        time.Now,
	}
}

// WithClock replaces the time source used by lifecycle commands
func (s *ShiftService) WithClock(now func() time.Time) *ShiftService {
	s.now = now
	return s
}

// ScheduleShiftRequest represents the request to schedule a shift.
// Times may be omitted for every type except custom.
type ScheduleShiftRequest struct {
	PatientID      string            `json:"patient_id" validate:"required,max=64"`
	CaregiverID    string            `json:"caregiver_id" validate:"required,max=64"`
	Date           string            `json:"date" validate:"required" example:"2024-03-04"`
	ShiftType      models.ShiftType  `json:"shift_type" validate:"required"`
	ScheduledStart *models.TimeOfDay `json:"scheduled_start,omitempty" swaggertype:"string" example:"07:00"`
	ScheduledEnd   *models.TimeOfDay `json:"scheduled_end,omitempty" swaggertype:"string" example:"13:00"`
}

// CheckInRequest represents the body of a check-in
type CheckInRequest struct {
	EntryNotes string `json:"entry_notes" validate:"max=2000"`
}

// CheckOutRequest represents the body of a check-out
type CheckOutRequest struct {
	ExitNotes      string            `json:"exit_notes" validate:"max=2000"`
	Incidents      []models.Incident `json:"incidents" validate:"dive"`
	TasksCompleted []models.Task     `json:"tasks_completed" validate:"dive"`
}

// ShiftResponse is a shift with its layout and the commands it accepts
type ShiftResponse struct {
	models.Shift
	Segments         []schedule.Segment `json:"segments"`
	AvailableActions []schedule.Action  `json:"available_actions"`
}

// TimelineResponse holds the day views of a patient calendar
type TimelineResponse struct {
	PatientID string             `json:"patient_id"`
	From      string             `json:"from"`
	To        string             `json:"to"`
	Days      []schedule.DayView `json:"days"`
}

func (s *ShiftService) toResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		Shift:            *shift,
		Segments:         schedule.LayoutShift(shift, s.location),
		AvailableActions: schedule.AvailableActions(shift.State),
	}
}

// Schedule validates a request, resolves the caregiver, then checks occupancy
// and stores the shift in one store transaction
func (s *ShiftService) Schedule(ctx context.Context, actor *auth.Principal, req *ScheduleShiftRequest) (*ShiftResponse, error) {
	if err := s.authorizer.Authorize(actor, auth.OpSchedule, ""); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	date, err := ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	start, end, err := schedule.ResolveWindow(req.ShiftType, req.ScheduledStart, req.ScheduledEnd)
	if err != nil {
		return nil, err
	}

	caregiver, err := s.directory.Resolve(ctx, req.CaregiverID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidationError("caregiver_id", "unknown caregiver "+req.CaregiverID)
		}
		return nil, err
	}
	if !caregiver.Active {
		return nil, apperrors.NewValidationError("caregiver_id", "caregiver "+req.CaregiverID+" is inactive")
	}

	shift := &models.Shift{
		BaseModel: models.BaseModel{
			CreatedBy: actor.Subject,
			UpdatedBy: actor.Subject,
		},
		PatientID:      req.PatientID,
		CaregiverID:    caregiver.ID,
		CaregiverName:  caregiver.DisplayName,
		Date:           models.DateOf(date),
		ScheduledStart: start,
		ScheduledEnd:   end,
		ShiftType:      req.ShiftType,
		State:          models.ShiftStateScheduled,
		ScheduledHours: schedule.ScheduledHours(start, end),
		Incidents:      []models.Incident{},
		TasksCompleted: []models.Task{},
	}
	err = s.repo.CreateChecked(ctx, shift, func(existing []models.Shift) error {
		return schedule.CanSchedule(existing, req.PatientID, date, req.ShiftType)
	})
	if apperrors.IsOccupancyConflict(err) {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"patient_id": req.PatientID,
			"date":       req.Date,
			"shift_type": req.ShiftType,
		}).Info("Shift rejected by occupancy guard")
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"shift_id":     shift.ID,
		"patient_id":   shift.PatientID,
		"caregiver_id": shift.CaregiverID,
		"date":         shift.DateString(),
		"shift_type":   shift.ShiftType,
	}).Info("Shift scheduled")

	return s.toResponse(shift), nil
}

// Get returns a single shift
func (s *ShiftService) Get(ctx context.Context, actor *auth.Principal, id uuid.UUID) (*ShiftResponse, error) {
	if err := s.authorizer.Authorize(actor, auth.OpView, ""); err != nil {
		return nil, err
	}
	shift, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(shift), nil
}

// ListByPatient returns the shifts anchored in [from, to] for a patient
func (s *ShiftService) ListByPatient(ctx context.Context, actor *auth.Principal, patientID string, from, to time.Time, includeCancelled bool) ([]ShiftResponse, error) {
	if err := s.authorizer.Authorize(actor, auth.OpView, ""); err != nil {
		return nil, err
	}
	if err := checkRange(patientID, from, to); err != nil {
		return nil, err
	}

	shifts, err := s.repo.Query(ctx, patientID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]ShiftResponse, 0, len(shifts))
	for i := range shifts {
		if !includeCancelled && shifts[i].State == models.ShiftStateCancelled {
			continue
		}
		out = append(out, *s.toResponse(&shifts[i]))
	}
	return out, nil
}

// Timeline renders the day views of a patient between from and to. Shifts
// anchored the day before from are loaded so their continuations show up.
func (s *ShiftService) Timeline(ctx context.Context, actor *auth.Principal, patientID string, from, to time.Time, includeCancelled bool) (*TimelineResponse, error) {
	if err := s.authorizer.Authorize(actor, auth.OpView, ""); err != nil {
		return nil, err
	}
	if err := checkRange(patientID, from, to); err != nil {
		return nil, err
	}

	shifts, err := s.repo.Query(ctx, patientID, from.AddDate(0, 0, -1), to)
	if err != nil {
		return nil, err
	}
	if !includeCancelled {
		kept := shifts[:0]
		for _, sh := range shifts {
			if sh.State != models.ShiftStateCancelled {
				kept = append(kept, sh)
			}
		}
		shifts = kept
	}

	return &TimelineResponse{
		PatientID: patientID,
		From:      from.Format(dateLayout),
		To:        to.Format(dateLayout),
		Days:      schedule.BuildDayViews(shifts, from, to, s.location),
	}, nil
}

func checkRange(patientID string, from, to time.Time) error {
	if patientID == "" {
		return apperrors.NewValidationError("patient_id", "patient is required")
	}
	from, to = models.DateOf(from), models.DateOf(to)
	if to.Before(from) {
		return apperrors.ErrInvalidTimeRange
	}
	if to.Sub(from) >= MaxTimelineDays*24*time.Hour {
		return apperrors.ErrRangeTooLarge
	}
	return nil
}

// Confirm moves a scheduled shift to confirmed
func (s *ShiftService) Confirm(ctx context.Context, actor *auth.Principal, id uuid.UUID) (*ShiftResponse, error) {
	return s.apply(ctx, actor, id, auth.OpConfirm, func(shift models.Shift) (*schedule.Transition, error) {
		return s.lifecycle.Confirm(shift)
	})
}

// CheckIn starts a shift now
func (s *ShiftService) CheckIn(ctx context.Context, actor *auth.Principal, id uuid.UUID, req *CheckInRequest) (*ShiftResponse, error) {
	if req == nil {
		req = &CheckInRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	return s.apply(ctx, actor, id, auth.OpCheckIn, func(shift models.Shift) (*schedule.Transition, error) {
		return s.lifecycle.CheckIn(shift, s.now(), req.EntryNotes)
	})
}

// CheckOut completes an active shift now
func (s *ShiftService) CheckOut(ctx context.Context, actor *auth.Principal, id uuid.UUID, req *CheckOutRequest) (*ShiftResponse, error) {
	if req == nil {
		req = &CheckOutRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	return s.apply(ctx, actor, id, auth.OpCheckOut, func(shift models.Shift) (*schedule.Transition, error) {
		return s.lifecycle.CheckOut(shift, s.now(), schedule.CheckOutInput{
			ExitNotes:      req.ExitNotes,
			Incidents:      req.Incidents,
			TasksCompleted: req.TasksCompleted,
		})
	})
}

// Cancel cancels a shift that has not finished
func (s *ShiftService) Cancel(ctx context.Context, actor *auth.Principal, id uuid.UUID) (*ShiftResponse, error) {
	return s.apply(ctx, actor, id, auth.OpCancel, func(shift models.Shift) (*schedule.Transition, error) {
		return s.lifecycle.Cancel(shift)
	})
}

// apply loads the shift, runs the transition and writes it back only if the
// stored state has not changed in between.
func (s *ShiftService) apply(ctx context.Context, actor *auth.Principal, id uuid.UUID, op auth.Operation, transition func(models.Shift) (*schedule.Transition, error)) (*ShiftResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrMissingToken
	}
	shift, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.Authorize(actor, op, shift.CaregiverID); err != nil {
		return nil, err
	}

	tr, err := transition(*shift)
	if err != nil {
		return nil, err
	}

	patch := tr.Shift
	patch.UpdatedBy = actor.Subject
	if err := s.repo.ConditionalUpdate(ctx, id, tr.From, &patch, tr.Fields); err != nil {
		var transitionErr *apperrors.InvalidTransitionError
		if errors.As(err, &transitionErr) {
			transitionErr.Action = string(tr.Action)
		}
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"shift_id": id,
		"action":   tr.Action,
		"from":     tr.From,
		"to":       tr.To,
	}).Info("Shift transitioned")

	return s.toResponse(&patch), nil
}
