package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// OccupancyConflictError is returned when a day is already covered by a
// non-cancelled full24 shift for the same patient.
type OccupancyConflictError struct {
	PatientID          string
	Date               string
	RequestedType      string
	ConflictingShiftID string
}

func (e *OccupancyConflictError) Error() string {
	msg := fmt.Sprintf("occupancy conflict: patient %s on %s is covered by a full24 shift", e.PatientID, e.Date)
	if e.ConflictingShiftID != "" {
		msg += " (" + e.ConflictingShiftID + ")"
	}
	if e.RequestedType != "" {
		msg += "; cannot schedule " + e.RequestedType
	}
	return msg
}

// InvalidTransitionError is returned when a lifecycle action is not permitted
// from the shift's current state. It also covers the losing side of a
// concurrent conditional update.
type InvalidTransitionError struct {
	ShiftID string
	Action  string
	Current string
}

func (e *InvalidTransitionError) Error() string {
	if e.ShiftID == "" {
		return fmt.Sprintf("invalid transition: cannot %s a shift in state %s", e.Action, e.Current)
	}
	return fmt.Sprintf("invalid transition: cannot %s shift %s in state %s", e.Action, e.ShiftID, e.Current)
}

// PersistenceError wraps a store failure. The attempted operation has not taken effect.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrShiftNotFound     = &NotFoundError{Entity: "shift"}
	ErrCaregiverNotFound = &NotFoundError{Entity: "caregiver"}
)

// Validation Errors
var (
	ErrInvalidTimeOfDay = &ValidationError{Field: "time", Message: "must be HH:MM between 00:00 and 23:59"}
	ErrMissingCaregiver = &ValidationError{Field: "caregiver_id", Message: "caregiver is required"}
	ErrZeroDuration     = &ValidationError{Field: "scheduled_end", Message: "shift must have a positive duration"}
	ErrInvalidTimeRange = &ValidationError{Field: "range", Message: "end date must not be before start date"}
)

// Business Logic Errors
var (
	ErrRangeTooLarge = errors.New("requested date range is too large")
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid token"}
	ErrForbidden    = &AuthorizationError{Message: "principal is not allowed to perform this action"}
)

// Configuration Errors
var (
	ErrLDAPNotConfigured = &ConfigurationError{Message: "ldap directory requested but LDAP_HOST is empty"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsOccupancyConflict checks if an error is an OccupancyConflictError
func IsOccupancyConflict(err error) bool {
	var conflictErr *OccupancyConflictError
	return errors.As(err, &conflictErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for an entity id
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(shiftID, action, current string) error {
	return &InvalidTransitionError{ShiftID: shiftID, Action: action, Current: current}
}

// NewPersistenceError wraps a store error for the given operation
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
