package repository

import (
	"context"
	"errors"
	"time"

	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	full24Index     = "ux_shifts_full24_patient_date"
	uniqueViolation = "23505"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewShiftRepository creates a new shift repository. Every call is bounded by timeout.
func NewShiftRepository(db *gorm.DB, timeout time.Duration) *ShiftRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ShiftRepository{db: db, timeout: timeout}
}

func (r *ShiftRepository) withTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	return r.db.WithContext(ctx), cancel
}

// Query retrieves shifts anchored between from and to, inclusive
func (r *ShiftRepository) Query(ctx context.Context, patientID string, from, to time.Time) ([]models.Shift, error) {
	db, cancel := r.withTimeout(ctx)
	defer cancel()

	q := db.Where("date BETWEEN ? AND ?", models.DateOf(from), models.DateOf(to))
	if patientID != "" {
		q = q.Where("patient_id = ?", patientID)
	}

	var shifts []models.Shift
	if err := q.Order("date ASC").Order("scheduled_start ASC").Find(&shifts).Error; err != nil {
		return nil, apperrors.NewPersistenceError("query shifts", err)
	}
	return shifts, nil
}

// Create inserts a new shift without an occupancy check. A duplicate on the
// full24 index means another live full24 shift got there first.
func (r *ShiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	db, cancel := r.withTimeout(ctx)
	defer cancel()

	return insertShift(db, shift)
}

// CreateChecked serializes writers for the shift's patient and date, runs
// check over the live and cancelled shifts already stored for that day and
// inserts the shift only when check returns nil. Errors from check are
// returned unchanged.
func (r *ShiftRepository) CreateChecked(ctx context.Context, shift *models.Shift, check OccupancyCheck) error {
	db, cancel := r.withTimeout(ctx)
	defer cancel()

	shift.Date = models.DateOf(shift.Date)
	err := db.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("patient_id = ? AND date = ?", shift.PatientID, shift.Date)
		if tx.Dialector.Name() == "postgres" {
			key := shift.PatientID + "|" + shift.DateString()
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
				return apperrors.NewPersistenceError("lock patient day", err)
			}
		} else {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var existing []models.Shift
		if err := q.Find(&existing).Error; err != nil {
			return apperrors.NewPersistenceError("query shifts", err)
		}
		if err := check(existing); err != nil {
			return err
		}
		return insertShift(tx, shift)
	})
	if err != nil && !isStoreError(err) {
		return apperrors.NewPersistenceError("create shift", err)
	}
	return err
}

// isStoreError reports whether err already carries a domain classification
func isStoreError(err error) bool {
	return apperrors.IsPersistence(err) || apperrors.IsOccupancyConflict(err) ||
		apperrors.IsValidation(err) || apperrors.IsNotFound(err)
}

func insertShift(db *gorm.DB, shift *models.Shift) error {
	shift.Date = models.DateOf(shift.Date)
	if err := db.Create(shift).Error; err != nil {
		if isFull24Conflict(err) {
			return &apperrors.OccupancyConflictError{
				PatientID:     shift.PatientID,
				Date:          shift.DateString(),
				RequestedType: string(shift.ShiftType),
			}
		}
		return apperrors.NewPersistenceError("create shift", err)
	}
	return nil
}

// isFull24Conflict reports whether err is a unique violation of the full24
// index. Other duplicates, such as a reused primary key, are not occupancy.
func isFull24Conflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == full24Index
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	db, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.get(db, id)
}

func (r *ShiftRepository) get(db *gorm.DB, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	if err := db.First(&shift, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("shift", id.String())
		}
		return nil, apperrors.NewPersistenceError("get shift", err)
	}
	return &shift, nil
}

// ConditionalUpdate applies fields of patch where id matches and the stored
// state is still expected. When nothing matches the row is re-read to tell a
// missing shift from one that moved on.
func (r *ShiftRepository) ConditionalUpdate(ctx context.Context, id uuid.UUID, expected models.ShiftState, patch *models.Shift, fields []string) error {
	db, cancel := r.withTimeout(ctx)
	defer cancel()

	patch.UpdatedAt = time.Now()
	columns := append(append([]string{}, fields...), "updated_at", "updated_by")

	result := db.Model(&models.Shift{}).
		Where("id = ? AND state = ?", id, expected).
		Select(columns).
		Updates(patch)
	if result.Error != nil {
		return apperrors.NewPersistenceError("update shift", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	current, err := r.get(db, id)
	if err != nil {
		return err
	}
	return apperrors.NewInvalidTransitionError(id.String(), "update", string(current.State))
}
