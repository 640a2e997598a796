package service

import (
	"context"
	"io"
	"time"

	"caregiver-shifts-backend/internal/auth"
	"caregiver-shifts-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ShiftServiceInterface defines the interface for shift service
type ShiftServiceInterface interface {
	Schedule(ctx context.Context, actor *auth.Principal, req *ScheduleShiftRequest) (*ShiftResponse, error)
	Get(ctx context.Context, actor *auth.Principal, id uuid.UUID) (*ShiftResponse, error)
	ListByPatient(ctx context.Context, actor *auth.Principal, patientID string, from, to time.Time, includeCancelled bool) ([]ShiftResponse, error)
	Confirm(ctx context.Context, actor *auth.Principal, id uuid.UUID) (*ShiftResponse, error)
	CheckIn(ctx context.Context, actor *auth.Principal, id uuid.UUID, req *CheckInRequest) (*ShiftResponse, error)
	CheckOut(ctx context.Context, actor *auth.Principal, id uuid.UUID, req *CheckOutRequest) (*ShiftResponse, error)
	Cancel(ctx context.Context, actor *auth.Principal, id uuid.UUID) (*ShiftResponse, error)
	Timeline(ctx context.Context, actor *auth.Principal, patientID string, from, to time.Time, includeCancelled bool) (*TimelineResponse, error)
}

// ReportServiceInterface defines the interface for hour reports
type ReportServiceInterface interface {
	WeeklyHours(ctx context.Context, actor *auth.Principal, weekStart time.Time, patientID string) (*HoursReport, error)
	ExportHours(ctx context.Context, actor *auth.Principal, weekStart time.Time, patientID string, w io.Writer) error
}

// CaregiverDirectory resolves caregiver identities when a shift is scheduled
type CaregiverDirectory interface {
	Resolve(ctx context.Context, caregiverID string) (*models.Caregiver, error)
}
