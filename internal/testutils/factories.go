package testutils

import (
	"time"

	"caregiver-shifts-backend/internal/database/models"

	"github.com/google/uuid"
)

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a scheduled morning shift for patient-1 on 2024-03-04
func (f *ShiftFactory) Create() *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			CreatedBy: "supervisor-1",
		},
		PatientID:      "patient-1",
		CaregiverID:    "caregiver-1",
		CaregiverName:  "Ana Souza",
		Date:           time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		ScheduledStart: models.NewTimeOfDay(7, 0),
		ScheduledEnd:   models.NewTimeOfDay(13, 0),
		ShiftType:      models.ShiftTypeMorning,
		State:          models.ShiftStateScheduled,
		ScheduledHours: 6,
		Incidents:      []models.Incident{},
		TasksCompleted: []models.Task{},
	}
}

// WithType returns a shift of shiftType using the type's preset window
func (f *ShiftFactory) WithType(shiftType models.ShiftType) *models.Shift {
	s := f.Create()
	s.ShiftType = shiftType
	if start, end, ok := shiftType.DefaultWindow(); ok {
		s.ScheduledStart = start
		s.ScheduledEnd = end
	}
	s.ScheduledHours = float64(models.DurationMinutes(s.ScheduledStart, s.ScheduledEnd)) / 60
	return s
}

// OnDate moves the shift to another anchoring date
func (f *ShiftFactory) OnDate(s *models.Shift, date time.Time) *models.Shift {
	s.Date = models.DateOf(date)
	return s
}

// InState returns a shift in state with plausible actual fields
func (f *ShiftFactory) InState(state models.ShiftState) *models.Shift {
	s := f.Create()
	s.State = state
	if state == models.ShiftStateActive || state == models.ShiftStateCompleted {
		start := s.ScheduledStartAt(time.UTC).Add(10 * time.Minute)
		s.ActualStart = &start
		s.DelayMinutes = 10
	}
	if state == models.ShiftStateCompleted {
		end := s.ActualStart.Add(6 * time.Hour)
		s.ActualEnd = &end
		s.ActualHours = 6
	}
	return s
}

// CaregiverFactory provides methods to create test Caregiver data
type CaregiverFactory struct{}

// NewCaregiverFactory creates a new CaregiverFactory
func NewCaregiverFactory() *CaregiverFactory {
	return &CaregiverFactory{}
}

// Create creates an active test caregiver
func (f *CaregiverFactory) Create() *models.Caregiver {
	return &models.Caregiver{
		ID:          "caregiver-1",
		DisplayName: "Ana Souza",
		Email:       "ana@example.com",
		Phone:       "+55 11 99999-0000",
		Active:      true,
	}
}

// WithID creates an active caregiver with a custom id and name
func (f *CaregiverFactory) WithID(id, name string) *models.Caregiver {
	c := f.Create()
	c.ID = id
	c.DisplayName = name
	c.Email = id + "@example.com"
	return c
}

// FactorySet groups all factories
type FactorySet struct {
	Shift     *ShiftFactory
	Caregiver *CaregiverFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Shift:     NewShiftFactory(),
		Caregiver: NewCaregiverFactory(),
	}
}
