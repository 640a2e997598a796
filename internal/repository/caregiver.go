package repository

import (
	"context"
	"errors"
	"time"

	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CaregiverRepository handles database operations for caregivers
type CaregiverRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewCaregiverRepository creates a new caregiver repository
func NewCaregiverRepository(db *gorm.DB, timeout time.Duration) *CaregiverRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CaregiverRepository{db: db, timeout: timeout}
}

// GetByID retrieves a caregiver by ID
func (r *CaregiverRepository) GetByID(ctx context.Context, id string) (*models.Caregiver, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var caregiver models.Caregiver
	if err := r.db.WithContext(ctx).First(&caregiver, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("caregiver", id)
		}
		return nil, apperrors.NewPersistenceError("get caregiver", err)
	}
	return &caregiver, nil
}

// List retrieves caregivers ordered by display name
func (r *CaregiverRepository) List(ctx context.Context, activeOnly bool) ([]models.Caregiver, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var caregivers []models.Caregiver
	if err := q.Order("display_name ASC").Find(&caregivers).Error; err != nil {
		return nil, apperrors.NewPersistenceError("list caregivers", err)
	}
	return caregivers, nil
}

// Upsert inserts a caregiver or updates the existing row with the same ID
func (r *CaregiverRepository) Upsert(ctx context.Context, caregiver *models.Caregiver) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "email", "phone", "active", "updated_at"}),
	}).Create(caregiver).Error
	if err != nil {
		return apperrors.NewPersistenceError("upsert caregiver", err)
	}
	return nil
}
