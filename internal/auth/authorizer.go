package auth

import (
	"fmt"

	apperrors "caregiver-shifts-backend/internal/errors"
)

// Operation is something a principal may try to do
type Operation string

const (
	OpView     Operation = "view"
	OpSchedule Operation = "schedule"
	OpConfirm  Operation = "confirm"
	OpCheckIn  Operation = "check-in"
	OpCheckOut Operation = "check-out"
	OpCancel   Operation = "cancel"
	OpReport   Operation = "report"
)

var rolePermissions = map[Role]map[Operation]bool{
	RoleSupervisor: {
		OpView: true, OpSchedule: true, OpConfirm: true, OpCheckIn: true,
		OpCheckOut: true, OpCancel: true, OpReport: true,
	},
	RoleFamily: {
		OpView: true, OpSchedule: true, OpConfirm: true, OpCancel: true, OpReport: true,
	},
	RoleCaregiver: {
		OpView: true, OpCheckIn: true, OpCheckOut: true,
	},
}

// Authorizer decides whether a principal may perform an operation
type Authorizer struct{}

// NewAuthorizer creates the role based authorizer
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Authorize returns nil when p may perform op. caregiverID is the caregiver
// assigned to the shift involved, if any: caregivers only act on their own shifts.
func (a *Authorizer) Authorize(p *Principal, op Operation, caregiverID string) error {
	if p == nil {
		return apperrors.ErrMissingToken
	}
	if !rolePermissions[p.Role][op] {
		return apperrors.NewAuthorizationError(fmt.Sprintf("role %s may not %s shifts", p.Role, op))
	}
	if p.Role == RoleCaregiver && (op == OpCheckIn || op == OpCheckOut) && p.Subject != caregiverID {
		return apperrors.NewAuthorizationError("caregivers may only " + string(op) + " their own shifts")
	}
	return nil
}
