package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"
	"caregiver-shifts-backend/internal/mocks"
	"caregiver-shifts-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const caregiversYAML = `caregivers:
  - id: cg-1
    display_name: Ana Souza
    email: ana@example.com
  - id: cg-2
    display_name: Bruno Lima
    active: false
`

const shiftsYAML = `shifts:
  - patient_id: patient-1
    caregiver_id: cg-1
    date: "2024-03-04"
    shift_type: night
    confirmed: true
  - patient_id: patient-1
    caregiver_id: cg-1
    date: "2024-03-05"
    shift_type: custom
    start: "09:30"
    end: "12:00"
  - patient_id: patient-1
    caregiver_id: cg-1
    date: "2024-03-06"
    shift_type: morning
`

func writeData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "caregivers.yaml"), []byte(caregiversYAML), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "march"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "march", "shifts.yaml"), []byte(shiftsYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o600))
	return dir
}

func TestLoad(t *testing.T) {
	data, err := Load(writeData(t))
	require.NoError(t, err)

	require.Len(t, data.Caregivers, 2)
	assert.Equal(t, "Ana Souza", data.Caregivers[0].DisplayName)
	require.NotNil(t, data.Caregivers[1].Active)
	assert.False(t, *data.Caregivers[1].Active)

	require.Len(t, data.Shifts, 3)
	assert.True(t, data.Shifts[0].Confirmed)
	assert.Equal(t, "09:30", data.Shifts[1].Start)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	caregivers := mocks.NewMockCaregiverRepositoryInterface(ctrl)
	shifts := mocks.NewMockShiftRepositoryInterface(ctrl)
	svc := mocks.NewMockShiftServiceInterface(ctrl)
	ctx := context.Background()

	data, err := Load(writeData(t))
	require.NoError(t, err)

	caregivers.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Caregiver) error {
		if c.ID == "cg-2" {
			assert.False(t, c.Active)
		} else {
			assert.True(t, c.Active)
		}
		return nil
	}).Times(2)

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	// night on the 4th is new and gets confirmed
	shifts.EXPECT().Query(ctx, "patient-1", day(4), day(4)).Return(nil, nil)
	nightID := uuid.New()
	svc.EXPECT().Schedule(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, req *service.ScheduleShiftRequest) (*service.ShiftResponse, error) {
			assert.Equal(t, models.ShiftTypeNight, req.ShiftType)
			return &service.ShiftResponse{Shift: models.Shift{BaseModel: models.BaseModel{ID: nightID}}}, nil
		})
	svc.EXPECT().Confirm(ctx, gomock.Any(), nightID).Return(&service.ShiftResponse{}, nil)

	// custom on the 5th already exists
	shifts.EXPECT().Query(ctx, "patient-1", day(5), day(5)).Return([]models.Shift{{
		CaregiverID:    "cg-1",
		ShiftType:      models.ShiftTypeCustom,
		ScheduledStart: models.NewTimeOfDay(9, 30),
		State:          models.ShiftStateScheduled,
	}}, nil)

	// morning on the 6th is blocked by a full24
	shifts.EXPECT().Query(ctx, "patient-1", day(6), day(6)).Return(nil, nil)
	svc.EXPECT().Schedule(ctx, gomock.Any(), gomock.Any()).Return(nil, &apperrors.OccupancyConflictError{PatientID: "patient-1", Date: "2024-03-06"})

	loader := NewLoader(caregivers, shifts, svc, "seed")
	res, err := loader.Apply(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 2, res.CaregiversUpserted)
	assert.Equal(t, 1, res.ShiftsCreated)
	assert.Equal(t, 2, res.ShiftsSkipped)
}

func TestApplyStopsOnValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	shifts := mocks.NewMockShiftRepositoryInterface(ctrl)
	svc := mocks.NewMockShiftServiceInterface(ctrl)
	ctx := context.Background()

	shifts.EXPECT().Query(ctx, "patient-1", gomock.Any(), gomock.Any()).Return(nil, nil)
	svc.EXPECT().Schedule(ctx, gomock.Any(), gomock.Any()).Return(nil, apperrors.NewValidationError("caregiver_id", "unknown caregiver ghost"))

	loader := NewLoader(mocks.NewMockCaregiverRepositoryInterface(ctrl), shifts, svc, "seed")
	_, err := loader.Apply(ctx, &Data{Shifts: []ShiftData{{PatientID: "patient-1", CaregiverID: "ghost", Date: "2024-03-04", ShiftType: "morning"}}})
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplyRejectsBadTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := NewLoader(mocks.NewMockCaregiverRepositoryInterface(ctrl), mocks.NewMockShiftRepositoryInterface(ctrl), mocks.NewMockShiftServiceInterface(ctrl), "seed")

	_, err := loader.Apply(context.Background(), &Data{Shifts: []ShiftData{{PatientID: "p", CaregiverID: "c", Date: "2024-03-04", ShiftType: "custom", Start: "7am"}}})
	assert.True(t, apperrors.IsValidation(err))
}
