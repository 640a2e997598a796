package models

import (
	"time"
)

// Incident is an event recorded by the caregiver at check-out
type Incident struct {
	Category    string           `json:"category" validate:"required,max=60"`
	Description string           `json:"description" validate:"max=1000"`
	Time        time.Time        `json:"time"`
	Severity    IncidentSeverity `json:"severity" validate:"required"`
}

// Task is a care task and whether it was completed during the shift
type Task struct {
	Description string `json:"description" validate:"required,max=200"`
	Done        bool   `json:"done"`
}

// Shift is a caregiver assignment for a patient on one calendar date.
// ScheduledEnd at or before ScheduledStart means the shift ends on the following day.
type Shift struct {
	BaseModel
	PatientID      string     `json:"patient_id" gorm:"size:64;not null;index:idx_shifts_patient_date,priority:1"`
	CaregiverID    string     `json:"caregiver_id" gorm:"size:64;not null;index"`
	CaregiverName  string     `json:"caregiver_name" gorm:"size:120"`
	Date           time.Time  `json:"date" gorm:"type:date;not null;index:idx_shifts_patient_date,priority:2"`
	ScheduledStart TimeOfDay  `json:"scheduled_start" gorm:"type:varchar(5);not null"`
	ScheduledEnd   TimeOfDay  `json:"scheduled_end" gorm:"type:varchar(5);not null"`
	ShiftType      ShiftType  `json:"shift_type" gorm:"type:varchar(20);not null"`
	State          ShiftState `json:"state" gorm:"type:varchar(20);not null;default:'scheduled';index"`
	ActualStart    *time.Time `json:"actual_start,omitempty"`
	ActualEnd      *time.Time `json:"actual_end,omitempty"`
	DelayMinutes   int        `json:"delay_minutes" gorm:"not null;default:0"`
	ScheduledHours float64    `json:"scheduled_hours" gorm:"not null;default:0"`
	ActualHours    float64    `json:"actual_hours" gorm:"not null;default:0"`
	EntryNotes     string     `json:"entry_notes" gorm:"type:text"`
	ExitNotes      string     `json:"exit_notes" gorm:"type:text"`
	Incidents      []Incident `json:"incidents" gorm:"type:text;serializer:json"`
	TasksCompleted []Task     `json:"tasks_completed" gorm:"type:text;serializer:json"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// DateOf truncates t to its calendar day, anchored at UTC midnight so that
// SQL date columns round-trip without zone drift.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar day
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateString formats the anchoring date as YYYY-MM-DD
func (s *Shift) DateString() string {
	return s.Date.Format("2006-01-02")
}

// CrossesMidnight reports whether the scheduled window ends on the following day
func (s *Shift) CrossesMidnight() bool {
	return CrossesMidnight(s.ScheduledStart, s.ScheduledEnd)
}

// ScheduledStartAt combines the anchoring date with the scheduled start in loc
func (s *Shift) ScheduledStartAt(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := s.Date.Date()
	return time.Date(y, m, d, s.ScheduledStart.Hour(), s.ScheduledStart.Minute(), 0, 0, loc)
}
