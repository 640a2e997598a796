package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"caregiver-shifts-backend/internal/auth"
	"caregiver-shifts-backend/internal/database/models"
	apperrors "caregiver-shifts-backend/internal/errors"
	"caregiver-shifts-backend/internal/mocks"
	"caregiver-shifts-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockShiftRepo *mocks.MockShiftRepositoryInterface
	reportService *service.ReportService
	ctx           context.Context
	supervisor    *auth.Principal
	monday        time.Time
	sunday        time.Time
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.reportService = service.NewReportService(suite.mockShiftRepo, auth.NewAuthorizer())
	suite.ctx = context.Background()
	suite.supervisor = &auth.Principal{Subject: "sup-1", Role: auth.RoleSupervisor}
	suite.monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	suite.sunday = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportServiceTestSuite) shift(caregiverID, name string, day int, state models.ShiftState, scheduled, actual float64) models.Shift {
	return models.Shift{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		PatientID:      "patient-1",
		CaregiverID:    caregiverID,
		CaregiverName:  name,
		Date:           suite.monday.AddDate(0, 0, day),
		ShiftType:      models.ShiftTypeCustom,
		State:          state,
		ScheduledHours: scheduled,
		ActualHours:    actual,
	}
}

func (suite *ReportServiceTestSuite) weekShifts() []models.Shift {
	return []models.Shift{
		suite.shift("cg-2", "Bruno", 0, models.ShiftStateCompleted, 8, 8.5),
		suite.shift("cg-2", "Bruno", 1, models.ShiftStateCompleted, 8, 8),
		suite.shift("cg-1", "Ana", 2, models.ShiftStateCompleted, 6, 7.8),
		suite.shift("cg-1", "Ana", 3, models.ShiftStateScheduled, 6, 0),
		suite.shift("cg-1", "Ana", 4, models.ShiftStateCancelled, 12, 0),
	}
}

func (suite *ReportServiceTestSuite) TestWeeklyHours() {
	// a Wednesday maps onto its Monday..Sunday week
	suite.mockShiftRepo.EXPECT().Query(suite.ctx, "patient-1", suite.monday, suite.sunday).Return(suite.weekShifts(), nil)

	report, err := suite.reportService.WeeklyHours(suite.ctx, suite.supervisor, suite.monday.AddDate(0, 0, 2), "patient-1")

	suite.Require().NoError(err)
	suite.Equal("2024-03-04", report.WeekStart)
	suite.Equal("2024-03-10", report.WeekEnd)
	suite.Require().Len(report.Rows, 2)

	ana := report.Rows[0]
	suite.Equal("Ana", ana.CaregiverName)
	suite.Equal(2, ana.ShiftCount)
	suite.Equal(12.0, ana.ScheduledHours)
	suite.Equal(7.8, ana.ActualHours)
	suite.Equal(-4.2, ana.Variance)

	bruno := report.Rows[1]
	suite.Equal(16.0, bruno.ScheduledHours)
	suite.Equal(16.5, bruno.ActualHours)
	suite.Equal(0.5, bruno.Variance)

	suite.Equal(28.0, report.ScheduledTotal)
	suite.Equal(24.3, report.ActualTotal)
}

func (suite *ReportServiceTestSuite) TestWeeklyHoursForbiddenForCaregiver() {
	_, err := suite.reportService.WeeklyHours(suite.ctx, &auth.Principal{Subject: "cg-1", Role: auth.RoleCaregiver}, suite.monday, "")
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *ReportServiceTestSuite) TestWeeklyHoursStoreFailure() {
	suite.mockShiftRepo.EXPECT().Query(suite.ctx, "", suite.monday, suite.sunday).
		Return(nil, apperrors.NewPersistenceError("query shifts", context.DeadlineExceeded))

	_, err := suite.reportService.WeeklyHours(suite.ctx, suite.supervisor, suite.monday, "")
	suite.True(apperrors.IsPersistence(err))
}

func (suite *ReportServiceTestSuite) TestExportHoursWorkbook() {
	suite.mockShiftRepo.EXPECT().Query(suite.ctx, "", suite.monday, suite.sunday).Return(suite.weekShifts(), nil)

	var buf bytes.Buffer
	err := suite.reportService.ExportHours(suite.ctx, suite.supervisor, suite.monday, "", &buf)
	suite.Require().NoError(err)

	f, err := excelize.OpenReader(&buf)
	suite.Require().NoError(err)
	defer func() { _ = f.Close() }()

	sheet := "Hours 2024-03-04"
	suite.Equal([]string{sheet}, f.GetSheetList())

	header, err := f.GetCellValue(sheet, "D3")
	suite.Require().NoError(err)
	suite.Equal("Scheduled hours", header)

	name, err := f.GetCellValue(sheet, "B4")
	suite.Require().NoError(err)
	suite.Equal("Ana", name)

	total, err := f.GetCellValue(sheet, "B6")
	suite.Require().NoError(err)
	suite.Equal("Total", total)

	scheduled, err := f.GetCellValue(sheet, "D6")
	suite.Require().NoError(err)
	suite.Equal("28", scheduled)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
