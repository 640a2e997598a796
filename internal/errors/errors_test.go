package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "shift"}
		assert.Equal(t, "shift not found", err.Error())
	})

	t.Run("Error message with id", func(t *testing.T) {
		err := NewNotFoundError("shift", "abc")
		assert.Equal(t, "shift abc not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err := NewNotFoundError("shift", "abc")
		assert.True(t, errors.Is(err, ErrShiftNotFound))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrShiftNotFound, ErrCaregiverNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrShiftNotFound)))
		assert.False(t, IsNotFound(ErrRangeTooLarge))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "scheduled_start", Message: "invalid format"}
		assert.Equal(t, "validation error: scheduled_start - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrZeroDuration))
		assert.False(t, IsValidation(ErrShiftNotFound))
	})
}

func TestOccupancyConflictError(t *testing.T) {
	err := &OccupancyConflictError{PatientID: "p1", Date: "2024-03-01", RequestedType: "morning", ConflictingShiftID: "s1"}
	assert.Equal(t, "occupancy conflict: patient p1 on 2024-03-01 is covered by a full24 shift (s1); cannot schedule morning", err.Error())
	assert.True(t, IsOccupancyConflict(fmt.Errorf("schedule: %w", err)))
	assert.False(t, IsOccupancyConflict(ErrShiftNotFound))
}

func TestInvalidTransitionError(t *testing.T) {
	err := NewInvalidTransitionError("s1", "check-in", "active")
	assert.Equal(t, "invalid transition: cannot check-in shift s1 in state active", err.Error())
	assert.True(t, IsInvalidTransition(err))
	assert.False(t, IsInvalidTransition(ErrZeroDuration))

	var transitionErr *InvalidTransitionError
	assert.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, "active", transitionErr.Current)
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewPersistenceError("create shift", cause)

	assert.Equal(t, "persistence error during create shift: connection refused", err.Error())
	assert.True(t, IsPersistence(err))
	assert.True(t, errors.Is(err, cause))
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.False(t, IsAuthentication(ErrForbidden))
	assert.True(t, IsAuthorization(ErrForbidden))
	assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
	assert.True(t, IsConfiguration(ErrLDAPNotConfigured))
}
