package handlers

import (
	"net/http"
	"strconv"
	"time"

	"caregiver-shifts-backend/internal/auth"
	"caregiver-shifts-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles HTTP requests for shift scheduling, lifecycle and calendars
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

func principal(c *gin.Context) *auth.Principal {
	p, _ := auth.GetPrincipal(c)
	return p
}

func shiftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID", Field: "id"})
		return uuid.Nil, false
	}
	return id, true
}

// dateRange reads ?from=&to= as calendar days. to defaults to from.
func dateRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := service.ParseDate("from", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to := from
	if raw := c.Query("to"); raw != "" {
		if to, err = service.ParseDate("to", raw); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}

func includeCancelled(c *gin.Context) bool {
	v, _ := strconv.ParseBool(c.DefaultQuery("include_cancelled", "false"))
	return v
}

// ScheduleShift handles POST /shifts
// @Summary Schedule a shift
// @Description Schedule a caregiver for a patient on a date. Preset shift types fill in their window when times are omitted.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.ScheduleShiftRequest true "Shift data"
// @Success 201 {object} service.ShiftResponse "Shift scheduled"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Role may not schedule"
// @Failure 409 {object} ErrorResponse "Date covered by a full24 shift"
// @Failure 503 {object} ErrorResponse "Shift store unavailable"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) ScheduleShift(c *gin.Context) {
	var req service.ScheduleShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	shift, err := h.shiftService.Schedule(c.Request.Context(), principal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetShift handles GET /shifts/:id
// @Summary Get shift by ID
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Shift"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := shiftID(c)
	if !ok {
		return
	}

	shift, err := h.shiftService.Get(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// ListPatientShifts handles GET /patients/:patientId/shifts
// @Summary List a patient's shifts
// @Description Shifts anchored between from and to inclusive. Cancelled shifts are hidden unless include_cancelled is set.
// @Tags shifts
// @Produce json
// @Param patientId path string true "Patient ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD), defaults to from"
// @Param include_cancelled query bool false "Include cancelled shifts"
// @Success 200 {array} service.ShiftResponse "Shifts"
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /patients/{patientId}/shifts [get]
func (h *ShiftHandler) ListPatientShifts(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	shifts, err := h.shiftService.ListByPatient(c.Request.Context(), principal(c), c.Param("patientId"), from, to, includeCancelled(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// GetTimeline handles GET /patients/:patientId/timeline
// @Summary Patient calendar
// @Description Day views with shift segments laid out on a 24 hour axis. Overnight shifts show their continuation on the following day.
// @Tags timeline
// @Produce json
// @Param patientId path string true "Patient ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD), defaults to from"
// @Param include_cancelled query bool false "Include cancelled shifts"
// @Success 200 {object} service.TimelineResponse "Timeline"
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /patients/{patientId}/timeline [get]
func (h *ShiftHandler) GetTimeline(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	timeline, err := h.shiftService.Timeline(c.Request.Context(), principal(c), c.Param("patientId"), from, to, includeCancelled(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}

// ConfirmShift handles POST /shifts/:id/confirm
// @Summary Confirm a scheduled shift
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Confirmed shift"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /shifts/{id}/confirm [post]
func (h *ShiftHandler) ConfirmShift(c *gin.Context) {
	id, ok := shiftID(c)
	if !ok {
		return
	}

	shift, err := h.shiftService.Confirm(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// CheckIn handles POST /shifts/:id/check-in
// @Summary Check in to a shift
// @Description Starts the shift now and records the delay against the scheduled start
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param body body service.CheckInRequest false "Entry notes"
// @Success 200 {object} service.ShiftResponse "Active shift"
// @Failure 403 {object} ErrorResponse "Not the assigned caregiver"
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /shifts/{id}/check-in [post]
func (h *ShiftHandler) CheckIn(c *gin.Context) {
	id, ok := shiftID(c)
	if !ok {
		return
	}

	var req service.CheckInRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	shift, err := h.shiftService.CheckIn(c.Request.Context(), principal(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// CheckOut handles POST /shifts/:id/check-out
// @Summary Check out of a shift
// @Description Completes the shift now, recording notes, incidents and tasks
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param body body service.CheckOutRequest false "Exit report"
// @Success 200 {object} service.ShiftResponse "Completed shift"
// @Failure 400 {object} ErrorResponse "Invalid incident or task"
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /shifts/{id}/check-out [post]
func (h *ShiftHandler) CheckOut(c *gin.Context) {
	id, ok := shiftID(c)
	if !ok {
		return
	}

	var req service.CheckOutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	shift, err := h.shiftService.CheckOut(c.Request.Context(), principal(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// CancelShift handles POST /shifts/:id/cancel
// @Summary Cancel a shift
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Cancelled shift"
// @Failure 409 {object} ErrorResponse "Invalid transition"
// @Security BearerAuth
// @Router /shifts/{id}/cancel [post]
func (h *ShiftHandler) CancelShift(c *gin.Context) {
	id, ok := shiftID(c)
	if !ok {
		return
	}

	shift, err := h.shiftService.Cancel(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}
