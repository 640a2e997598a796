package repository

import (
	"context"
	"time"

	"caregiver-shifts-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OccupancyCheck decides whether a shift may join the shifts already stored
// for its patient and date. A non-nil error aborts the insert.
type OccupancyCheck func(existing []models.Shift) error

// ShiftRepositoryInterface is the shift store. Shifts are never deleted;
// lifecycle writes go through ConditionalUpdate.
type ShiftRepositoryInterface interface {
	// Query returns shifts anchored in [from, to]. An empty patientID matches every patient.
	Query(ctx context.Context, patientID string, from, to time.Time) ([]models.Shift, error)
	Create(ctx context.Context, shift *models.Shift) error
	// CreateChecked runs check and the insert atomically per patient and date.
	CreateChecked(ctx context.Context, shift *models.Shift, check OccupancyCheck) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	// ConditionalUpdate writes fields from patch only if the stored state equals expected.
	ConditionalUpdate(ctx context.Context, id uuid.UUID, expected models.ShiftState, patch *models.Shift, fields []string) error
}

// CaregiverRepositoryInterface defines the interface for caregiver directory storage
type CaregiverRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*models.Caregiver, error)
	List(ctx context.Context, activeOnly bool) ([]models.Caregiver, error)
	Upsert(ctx context.Context, caregiver *models.Caregiver) error
}
