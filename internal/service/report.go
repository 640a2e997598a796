package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"caregiver-shifts-backend/internal/auth"
	"caregiver-shifts-backend/internal/logger"
	"caregiver-shifts-backend/internal/repository"
	"caregiver-shifts-backend/internal/schedule"

	"github.com/xuri/excelize/v2"
)

// HoursRow is one caregiver line of the weekly report
type HoursRow struct {
	schedule.CaregiverHours
	Variance float64 `json:"variance"`
}

// HoursReport is the weekly scheduled vs. actual hours per caregiver
type HoursReport struct {
	WeekStart      string     `json:"week_start"`
	WeekEnd        string     `json:"week_end"`
	PatientID      string     `json:"patient_id,omitempty"`
	Rows           []HoursRow `json:"rows"`
	ScheduledTotal float64    `json:"scheduled_total"`
	ActualTotal    float64    `json:"actual_total"`
}

// ReportService builds hour reports
type ReportService struct {
	repo       repository.ShiftRepositoryInterface
	authorizer *auth.Authorizer
}

// NewReportService creates a new report service
func NewReportService(repo repository.ShiftRepositoryInterface, authorizer *auth.Authorizer) *ReportService {
	return &ReportService{repo: repo, authorizer: authorizer}
}

// WeeklyHours aggregates the Monday to Sunday week containing weekStart.
// An empty patientID covers every patient.
func (s *ReportService) WeeklyHours(ctx context.Context, actor *auth.Principal, weekStart time.Time, patientID string) (*HoursReport, error) {
	if err := s.authorizer.Authorize(actor, auth.OpReport, ""); err != nil {
		return nil, err
	}

	start, end := schedule.WeekBounds(weekStart)
	shifts, err := s.repo.Query(ctx, patientID, start, end)
	if err != nil {
		return nil, err
	}

	rows := schedule.Aggregate(shifts, start, end)
	report := &HoursReport{
		WeekStart: start.Format(dateLayout),
		WeekEnd:   end.Format(dateLayout),
		PatientID: patientID,
		Rows:      make([]HoursRow, 0, len(rows)),
	}
	var scheduled, actual float64
	for _, r := range rows {
		report.Rows = append(report.Rows, HoursRow{CaregiverHours: r, Variance: r.Variance()})
		scheduled += r.ScheduledHours
		actual += r.ActualHours
	}
	report.ScheduledTotal = schedule.RoundHours(scheduled)
	report.ActualTotal = schedule.RoundHours(actual)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"week_start": report.WeekStart,
		"patient_id": patientID,
		"rows":       len(report.Rows),
	}).Debug("Weekly hours aggregated")

	return report, nil
}

// ExportHours writes the weekly report as an xlsx workbook to w
func (s *ReportService) ExportHours(ctx context.Context, actor *auth.Principal, weekStart time.Time, patientID string, w io.Writer) error {
	report, err := s.WeeklyHours(ctx, actor, weekStart, patientID)
	if err != nil {
		return err
	}
	return WriteHoursWorkbook(report, w)
}

// WriteHoursWorkbook renders report into a single-sheet workbook
func WriteHoursWorkbook(report *HoursReport, w io.Writer) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := "Hours " + report.WeekStart
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	title := fmt.Sprintf("Caregiver hours %s to %s", report.WeekStart, report.WeekEnd)
	if report.PatientID != "" {
		title += " (patient " + report.PatientID + ")"
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", "F1"); err != nil {
		return err
	}

	headers := []string{"Caregiver ID", "Caregiver", "Shifts", "Scheduled hours", "Actual hours", "Variance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err == nil {
		_ = f.SetCellStyle(sheet, "A3", "F3", headerStyle)
	}

	row := 4
	for _, r := range report.Rows {
		values := []interface{}{r.CaregiverID, r.CaregiverName, r.ShiftCount, r.ScheduledHours, r.ActualHours, r.Variance}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	totalRow := []interface{}{"", "Total", "", report.ScheduledTotal, report.ActualTotal,
		schedule.RoundHours(report.ActualTotal - report.ScheduledTotal)}
	for i, v := range totalRow {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(sheet, "A", "B", 22)
	_ = f.SetColWidth(sheet, "C", "F", 16)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
