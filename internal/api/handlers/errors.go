package handlers

import (
	"errors"
	"net/http"

	apperrors "caregiver-shifts-backend/internal/errors"
	"caregiver-shifts-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error        string `json:"error" example:"error message"`
	Field        string `json:"field,omitempty" example:"caregiver_id"`
	ShiftID      string `json:"shift_id,omitempty"`
	Action       string `json:"action,omitempty" example:"check-in"`
	CurrentState string `json:"current_state,omitempty" example:"completed"`
	PatientID    string `json:"patient_id,omitempty"`
	Date         string `json:"date,omitempty" example:"2024-03-04"`
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.OccupancyConflictError
		transitionErr *apperrors.InvalidTransitionError
		persistErr    *apperrors.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: validationErr.Field})
	case errors.Is(err, apperrors.ErrRangeTooLarge):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: "range"})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:     err.Error(),
			ShiftID:   conflictErr.ConflictingShiftID,
			PatientID: conflictErr.PatientID,
			Date:      conflictErr.Date,
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:        err.Error(),
			ShiftID:      transitionErr.ShiftID,
			Action:       transitionErr.Action,
			CurrentState: transitionErr.Current,
		})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.As(err, &persistErr):
		logger.WithContext(c.Request.Context()).WithError(err).WithField("op", persistErr.Op).Error("Store unavailable")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "shift store unavailable, try again"})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// bindError reports a malformed request body
func bindError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: validationErr.Field})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
}
