package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"caregiver-shifts-backend/internal/schedule"
	"caregiver-shifts-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves weekly hour reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func weekStart(c *gin.Context) (time.Time, error) {
	return service.ParseDate("week_start", c.Query("week_start"))
}

// WeeklyHours handles GET /reports/hours
// @Summary Weekly caregiver hours
// @Description Scheduled and actual hours per caregiver for the Monday to Sunday week containing week_start
// @Tags reports
// @Produce json
// @Param week_start query string true "Any date in the week (YYYY-MM-DD)"
// @Param patient_id query string false "Restrict to one patient"
// @Success 200 {object} service.HoursReport "Report"
// @Failure 400 {object} ErrorResponse "Invalid week_start"
// @Failure 403 {object} ErrorResponse "Role may not read reports"
// @Security BearerAuth
// @Router /reports/hours [get]
func (h *ReportHandler) WeeklyHours(c *gin.Context) {
	start, err := weekStart(c)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reportService.WeeklyHours(c.Request.Context(), principal(c), start, c.Query("patient_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportWeeklyHours handles GET /reports/hours.xlsx
// @Summary Weekly caregiver hours as a spreadsheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param week_start query string true "Any date in the week (YYYY-MM-DD)"
// @Param patient_id query string false "Restrict to one patient"
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} ErrorResponse "Invalid week_start"
// @Security BearerAuth
// @Router /reports/hours.xlsx [get]
func (h *ReportHandler) ExportWeeklyHours(c *gin.Context) {
	start, err := weekStart(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.reportService.ExportHours(c.Request.Context(), principal(c), start, c.Query("patient_id"), &buf); err != nil {
		respondError(c, err)
		return
	}

	monday, _ := schedule.WeekBounds(start)
	filename := fmt.Sprintf("caregiver-hours-%s.xlsx", monday.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
