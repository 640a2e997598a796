package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"caregiver-shifts-backend/internal/auth"
	apperrors "caregiver-shifts-backend/internal/errors"
	"caregiver-shifts-backend/internal/mocks"
	"caregiver-shifts-backend/internal/schedule"
	"caregiver-shifts-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func run(open appOpener, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func neverOpen(t *testing.T) appOpener {
	return func(bool) (*app, error) {
		t.Fatal("store opened before flags were validated")
		return nil, nil
	}
}

func TestReportHoursRequiresWeek(t *testing.T) {
	_, err := run(neverOpen(t), "report", "hours")
	assert.Error(t, err)

	_, err = run(neverOpen(t), "report", "hours", "--week-start", "next monday")
	assert.True(t, apperrors.IsValidation(err))
}

func TestTimelineRequiresPatientAndFrom(t *testing.T) {
	_, err := run(neverOpen(t), "timeline", "--from", "2024-03-04")
	assert.Error(t, err)

	_, err = run(neverOpen(t), "timeline", "--patient", "p1", "--from", "2024-03-04", "--to", "04/03")
	assert.True(t, apperrors.IsValidation(err))
}

func TestMigrateOpensWithMigration(t *testing.T) {
	var migrated bool
	out, err := run(func(migrate bool) (*app, error) {
		migrated = migrate
		return &app{}, nil
	}, "migrate")
	require.NoError(t, err)
	assert.True(t, migrated)
	assert.Contains(t, out, "schema up to date")

	_, err = run(func(bool) (*app, error) { return nil, errors.New("connection refused") }, "migrate")
	assert.EqualError(t, err, "connection refused")
}

func TestReportHoursPrintsTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportServiceInterface(ctrl)
	actor := &auth.Principal{Subject: "shiftctl", Role: auth.RoleSupervisor}

	reports.EXPECT().WeeklyHours(gomock.Any(), actor, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), "patient-1").Return(&service.HoursReport{
		WeekStart: "2024-03-04",
		WeekEnd:   "2024-03-10",
		Rows: []service.HoursRow{{
			CaregiverHours: schedule.CaregiverHours{CaregiverID: "cg-1", CaregiverName: "Ana", ShiftCount: 2, ScheduledHours: 16, ActualHours: 16.5},
			Variance:       0.5,
		}},
		ScheduledTotal: 16,
		ActualTotal:    16.5,
	}, nil)

	out, err := run(func(migrate bool) (*app, error) {
		assert.False(t, migrate)
		return &app{reports: reports, actor: actor}, nil
	}, "report", "hours", "--week-start", "2024-03-06", "--patient", "patient-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Week 2024-03-04 to 2024-03-10")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "16.5")
	assert.Contains(t, out, "+0.5")
}

func TestTimelinePrintsJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	shifts := mocks.NewMockShiftServiceInterface(ctrl)
	actor := &auth.Principal{Subject: "shiftctl", Role: auth.RoleSupervisor}
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	shifts.EXPECT().Timeline(gomock.Any(), actor, "p1", day, day, false).Return(&service.TimelineResponse{
		PatientID: "p1",
		From:      "2024-03-04",
		To:        "2024-03-04",
		Days:      []schedule.DayView{{Date: "2024-03-04", Segments: []schedule.PlacedSegment{}}},
	}, nil)

	out, err := run(func(bool) (*app, error) {
		return &app{shifts: shifts, actor: actor}, nil
	}, "timeline", "--patient", "p1", "--from", "2024-03-04")

	require.NoError(t, err)
	assert.Contains(t, out, `"patient_id": "p1"`)
	assert.Contains(t, out, `"date": "2024-03-04"`)
}
